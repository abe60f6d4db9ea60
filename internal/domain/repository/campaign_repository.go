// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"unveil/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for campaign persistence.
var (
	// ErrCampaignNotFound is returned when a campaign is not found.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrDuplicateCampaign is returned when trying to create a campaign whose ID is taken.
	ErrDuplicateCampaign = errors.New("campaign already exists")
	// ErrInvalidCampaignStatus is returned when storing a status outside the known set.
	ErrInvalidCampaignStatus = errors.New("invalid campaign status")
)

// CampaignRepository defines the interface for campaign storage. Campaigns are
// append-only; only their status changes after creation.
type CampaignRepository interface {
	// CreateCampaign appends a new campaign.
	CreateCampaign(ctx context.Context, campaign *entity.Campaign) error

	// FindCampaignByID retrieves a campaign by its ID.
	FindCampaignByID(ctx context.Context, id string) (*entity.Campaign, error)

	// FindCampaignsByUser retrieves every campaign of a user in creation order.
	FindCampaignsByUser(ctx context.Context, userID string) ([]*entity.Campaign, error)

	// FindOpenCampaign retrieves the first campaign between the business and the
	// user whose status does not end the relationship.
	FindOpenCampaign(ctx context.Context, businessID, userID string) (*entity.Campaign, error)

	// UpdateCampaignStatus sets the status of a campaign.
	UpdateCampaignStatus(ctx context.Context, id string, status entity.CampaignStatus) error
}
