package usecase

import (
	"context"

	"unveil/internal/domain/entity"
)

// OfferMatch is an offer with its compatibility score and the reasons it matches
type OfferMatch struct {
	Offer   *entity.Offer `json:"offer"`
	Score   float64       `json:"score"`
	Matches []string      `json:"matches"`
}

// FeedItem is a primary feed offer annotated with the creator's application state
type FeedItem struct {
	Offer   *entity.Offer         `json:"offer"`
	Applied bool                  `json:"applied"`
	Status  entity.CampaignStatus `json:"status,omitempty"`
}

// MatchingUsecase defines the interface for offer discovery use cases
type MatchingUsecase interface {
	// GetAllOffers returns the whole catalog in catalog order
	GetAllOffers(ctx context.Context) ([]*entity.Offer, error)

	// GetOfferByID retrieves a single offer
	GetOfferByID(ctx context.Context, offerID string) (*entity.Offer, error)

	// GetMatchingOffers returns the primary feed: offers at or above the primary threshold, best first
	GetMatchingOffers(ctx context.Context, user *entity.User) ([]*entity.Offer, error)

	// GetMatchingOffersWithDetails returns the detailed feed with scores and match reasons
	GetMatchingOffersWithDetails(ctx context.Context, user *entity.User) ([]*OfferMatch, error)

	// GetFeed returns the primary feed annotated with application state
	GetFeed(ctx context.Context, user *entity.User) ([]*FeedItem, error)
}
