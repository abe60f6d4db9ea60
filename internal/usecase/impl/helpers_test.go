package impl

import (
	"io"
	"log/slog"
	"time"

	"unveil/internal/domain/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func boolPtr(b bool) *bool {
	return &b
}

func newCreator() *entity.User {
	return &entity.User{
		ID:           "user_1",
		Country:      "Chile",
		Interests:    []string{"Gastronomía"},
		Stats:        entity.UserStats{Level: entity.LevelIntermediate},
		ContentTypes: []string{"reel"},
	}
}

// newRemoteOffer scores 1.0 for newCreator, or 0.95 when exclusivity is left unset.
func newRemoteOffer(id, businessID string, exclusive *bool) *entity.Offer {
	return &entity.Offer{
		ID:            id,
		BusinessID:    businessID,
		Title:         "Oferta " + id,
		Category:      "Gastronomía",
		RequiredLevel: entity.LevelBeginner,
		IsRemote:      true,
		Exclusive:     exclusive,
	}
}
