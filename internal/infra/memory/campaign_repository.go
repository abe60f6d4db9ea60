// Package memory contains the process-local implementation of the campaign store.
package memory

import (
	"context"
	"sync"

	"unveil/internal/domain/entity"
	"unveil/internal/domain/repository"

	"github.com/pkg/errors"
)

// campaignTable is the append-only list of campaigns shared by the repository and its transactions.
type campaignTable struct {
	mu        sync.RWMutex
	campaigns []*entity.Campaign
}

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	table *campaignTable
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository() repository.CampaignRepository {
	return &campaignRepository{
		table: &campaignTable{},
	}
}

// CreateCampaign appends a new campaign.
func (repo *campaignRepository) CreateCampaign(ctx context.Context, campaign *entity.Campaign) error {
	repo.table.mu.Lock()
	defer repo.table.mu.Unlock()

	campaigns, err := appendCampaign(repo.table.campaigns, campaign)
	if err != nil {
		return err
	}
	repo.table.campaigns = campaigns

	return nil
}

// FindCampaignByID retrieves a campaign by its ID.
func (repo *campaignRepository) FindCampaignByID(ctx context.Context, id string) (*entity.Campaign, error) {
	repo.table.mu.RLock()
	defer repo.table.mu.RUnlock()

	return findByID(repo.table.campaigns, id)
}

// FindCampaignsByUser retrieves every campaign of a user in creation order.
func (repo *campaignRepository) FindCampaignsByUser(ctx context.Context, userID string) ([]*entity.Campaign, error) {
	repo.table.mu.RLock()
	defer repo.table.mu.RUnlock()

	return findByUser(repo.table.campaigns, userID), nil
}

// FindOpenCampaign retrieves the first campaign between the business and the user that is still open.
func (repo *campaignRepository) FindOpenCampaign(ctx context.Context, businessID, userID string) (*entity.Campaign, error) {
	repo.table.mu.RLock()
	defer repo.table.mu.RUnlock()

	return findOpen(repo.table.campaigns, businessID, userID)
}

// UpdateCampaignStatus sets the status of a campaign.
func (repo *campaignRepository) UpdateCampaignStatus(ctx context.Context, id string, status entity.CampaignStatus) error {
	repo.table.mu.Lock()
	defer repo.table.mu.Unlock()

	return updateStatus(repo.table.campaigns, id, status)
}

// The helpers below operate on a slice the caller already guards.

func appendCampaign(campaigns []*entity.Campaign, campaign *entity.Campaign) ([]*entity.Campaign, error) {
	if !campaign.Status.IsValid() {
		return nil, errors.Wrapf(repository.ErrInvalidCampaignStatus, "campaign %s: %q", campaign.ID, campaign.Status)
	}
	if _, err := findByID(campaigns, campaign.ID); err == nil {
		return nil, repository.ErrDuplicateCampaign
	}

	stored := *campaign

	return append(campaigns, &stored), nil
}

func findByID(campaigns []*entity.Campaign, id string) (*entity.Campaign, error) {
	for _, campaign := range campaigns {
		if campaign.ID == id {
			found := *campaign

			return &found, nil
		}
	}

	return nil, repository.ErrCampaignNotFound
}

func findByUser(campaigns []*entity.Campaign, userID string) []*entity.Campaign {
	result := make([]*entity.Campaign, 0)
	for _, campaign := range campaigns {
		if campaign.UserID == userID {
			found := *campaign
			result = append(result, &found)
		}
	}

	return result
}

func findOpen(campaigns []*entity.Campaign, businessID, userID string) (*entity.Campaign, error) {
	for _, campaign := range campaigns {
		if campaign.BusinessID == businessID &&
			campaign.UserID == userID &&
			!campaign.Status.EndsRelationship() {
			found := *campaign

			return &found, nil
		}
	}

	return nil, repository.ErrCampaignNotFound
}

func updateStatus(campaigns []*entity.Campaign, id string, status entity.CampaignStatus) error {
	if !status.IsValid() {
		return errors.Wrapf(repository.ErrInvalidCampaignStatus, "campaign %s: %q", id, status)
	}

	for _, campaign := range campaigns {
		if campaign.ID == id {
			campaign.Status = status

			return nil
		}
	}

	return repository.ErrCampaignNotFound
}
