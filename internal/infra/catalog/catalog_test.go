package catalog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"unveil/config"
	"unveil/internal/domain/entity"
	domainerrors "unveil/internal/domain/errors"
	"unveil/internal/domain/repository"
	"unveil/internal/infra/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SeedCatalog(t *testing.T) {
	offers, err := Load("", validator.New())
	require.NoError(t, err)
	require.Len(t, offers, 8)

	first := offers[0]
	assert.Equal(t, "offer_1", first.ID)
	assert.Equal(t, "biz_1", first.BusinessID)
	assert.Equal(t, entity.LevelBeginner, first.RequiredLevel)
	assert.True(t, first.RequiresAttendance())
	require.NotNil(t, first.Exclusive)
	assert.False(t, *first.Exclusive)
	require.NotNil(t, first.Incentive.Value)
	assert.InDelta(t, 45000, *first.Incentive.Value, 0.001)
	require.NotNil(t, first.ExpiresAt)
	assert.Equal(t, 2026, first.ExpiresAt.Year())

	assert.Nil(t, offers[4].Exclusive, "unset flag stays nil")
	require.NotNil(t, offers[3].AgeRange)
	assert.Equal(t, 35, offers[3].AgeRange.Max)
}

func TestParse_RejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing business", "offers:\n  - id: o1\n    title: T\n"},
		{"unknown level", "offers:\n  - id: o1\n    businessId: b1\n    title: T\n    requiredLevel: Experto\n"},
		{"duplicate id", "offers:\n  - id: o1\n    businessId: b1\n    title: T\n  - id: o1\n    businessId: b2\n    title: U\n"},
		{"inverted age range", "offers:\n  - id: o1\n    businessId: b1\n    title: T\n    ageRange: {min: 30, max: 20}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), validator.New())
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	_, err := Parse([]byte("offers: [\n"), validator.New())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("offers:\n  - id: o1\n    businessId: b1\n    title: T\n    isRemote: true\n"), 0o644))

	offers, err := Load(path, validator.New())
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.True(t, offers[0].IsRemote)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), validator.New())
	assert.Error(t, err)
}

func TestMemoryCatalog(t *testing.T) {
	ctx := context.Background()
	offers := []*entity.Offer{{ID: "o1", BusinessID: "b1"}, {ID: "o2", BusinessID: "b1"}}
	c := NewMemoryCatalog(offers)

	listed, err := c.ListOffers(ctx)
	require.NoError(t, err)
	assert.Equal(t, offers, listed)

	listed[0] = nil
	again, err := c.ListOffers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "o1", again[0].ID, "listing returns a fresh slice")

	found, err := c.FindOfferByID(ctx, "o2")
	require.NoError(t, err)
	assert.Equal(t, "o2", found.ID)

	_, err = c.FindOfferByID(ctx, "o3")
	assert.ErrorIs(t, err, repository.ErrOfferNotFound)
}

func TestNew_UsesConfiguredPath(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := New(Params{Config: &config.Config{}, Logger: logger, Validator: validator.New()})
	require.NoError(t, err)
	offers, err := c.ListOffers(context.Background())
	require.NoError(t, err)
	assert.Len(t, offers, 8)

	_, err = New(Params{
		Config:    &config.Config{Catalog: &config.CatalogConfig{Path: "/nonexistent/offers.yaml"}},
		Logger:    logger,
		Validator: validator.New(),
	})
	assert.Error(t, err)
}
