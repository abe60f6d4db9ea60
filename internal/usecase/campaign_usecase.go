package usecase

import (
	"context"

	"unveil/internal/domain/entity"
)

// ApplicationStatus tells whether a creator has an open application with an offer's business
type ApplicationStatus struct {
	Applied bool                  `json:"applied"`
	Status  entity.CampaignStatus `json:"status,omitempty"`
}

// CampaignUsecase defines the interface for campaign queries and lifecycle changes
type CampaignUsecase interface {
	GetCampaignByID(ctx context.Context, campaignID string) (*entity.Campaign, error)
	GetUserCampaigns(ctx context.Context, userID string) ([]*entity.Campaign, error)

	// GetUserApplicationStatus reports the first open campaign between the user and the offer's business
	GetUserApplicationStatus(ctx context.Context, offerID, userID string) (*ApplicationStatus, error)
	HasUserAppliedToOffer(ctx context.Context, offerID, userID string) (bool, error)

	// GetAppliedOffersByUser returns every offer whose business has a campaign with the user
	GetAppliedOffersByUser(ctx context.Context, userID string) ([]string, error)

	// Terminal transitions, allowed from pending or active
	CancelCampaign(ctx context.Context, campaignID string) (*entity.Campaign, error)
	CompleteCampaign(ctx context.Context, campaignID string) (*entity.Campaign, error)
}
