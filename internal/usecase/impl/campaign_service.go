package impl

import (
	"context"
	"log/slog"

	"unveil/internal/domain/entity"
	domainerrors "unveil/internal/domain/errors"
	"unveil/internal/domain/repository"
	"unveil/internal/usecase"

	"github.com/pkg/errors"
)

type campaignService struct {
	catalog      repository.OfferCatalog
	campaignRepo repository.CampaignRepository
	txManager    repository.TransactionManager
	logger       *slog.Logger
}

// NewCampaignService creates a new campaign service instance
func NewCampaignService(
	catalog repository.OfferCatalog,
	campaignRepo repository.CampaignRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CampaignUsecase {
	return &campaignService{
		catalog:      catalog,
		campaignRepo: campaignRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetCampaignByID retrieves a campaign
func (s *campaignService) GetCampaignByID(ctx context.Context, campaignID string) (*entity.Campaign, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound.WithDetails(campaignID)
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	return campaign, nil
}

// GetUserCampaigns retrieves every campaign of a user regardless of status
func (s *campaignService) GetUserCampaigns(ctx context.Context, userID string) ([]*entity.Campaign, error) {
	campaigns, err := s.campaignRepo.FindCampaignsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find campaigns by user")
	}

	return campaigns, nil
}

// GetUserApplicationStatus reports the first open campaign between the user and the offer's business.
// An unknown offer is reported as not applied.
func (s *campaignService) GetUserApplicationStatus(ctx context.Context, offerID, userID string) (*usecase.ApplicationStatus, error) {
	offer, err := s.catalog.FindOfferByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return &usecase.ApplicationStatus{Applied: false}, nil
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	campaign, err := s.campaignRepo.FindOpenCampaign(ctx, offer.BusinessID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return &usecase.ApplicationStatus{Applied: false}, nil
		}

		return nil, errors.Wrap(err, "failed to find open campaign")
	}

	return &usecase.ApplicationStatus{Applied: true, Status: campaign.Status}, nil
}

// HasUserAppliedToOffer reports whether GetUserApplicationStatus finds an application
func (s *campaignService) HasUserAppliedToOffer(ctx context.Context, offerID, userID string) (bool, error) {
	status, err := s.GetUserApplicationStatus(ctx, offerID, userID)
	if err != nil {
		return false, err
	}

	return status.Applied, nil
}

// GetAppliedOffersByUser returns, in catalog order, every offer whose business has any campaign with the user.
// Sibling offers of the same business count as applied too.
func (s *campaignService) GetAppliedOffersByUser(ctx context.Context, userID string) ([]string, error) {
	campaigns, err := s.campaignRepo.FindCampaignsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find campaigns by user")
	}

	businessIDs := make(map[string]struct{}, len(campaigns))
	for _, campaign := range campaigns {
		businessIDs[campaign.BusinessID] = struct{}{}
	}

	offers, err := s.catalog.ListOffers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	offerIDs := make([]string, 0)
	for _, offer := range offers {
		if _, ok := businessIDs[offer.BusinessID]; ok {
			offerIDs = append(offerIDs, offer.ID)
		}
	}

	return offerIDs, nil
}

// CancelCampaign moves a pending or active campaign to canceled
func (s *campaignService) CancelCampaign(ctx context.Context, campaignID string) (*entity.Campaign, error) {
	return s.transition(ctx, campaignID, entity.CampaignStatusCanceled)
}

// CompleteCampaign moves a pending or active campaign to completed
func (s *campaignService) CompleteCampaign(ctx context.Context, campaignID string) (*entity.Campaign, error) {
	return s.transition(ctx, campaignID, entity.CampaignStatusCompleted)
}

func (s *campaignService) transition(ctx context.Context, campaignID string, next entity.CampaignStatus) (*entity.Campaign, error) {
	var updated *entity.Campaign

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		campaignRepo := txRepoFactory.NewCampaignRepository()

		campaign, err := campaignRepo.FindCampaignByID(ctx, campaignID)
		if err != nil {
			if errors.Is(err, repository.ErrCampaignNotFound) {
				return domainerrors.ErrCampaignNotFound.WithDetails(campaignID)
			}

			return errors.Wrap(err, "failed to find campaign by ID")
		}

		if !campaign.Status.CanTransitionTo(next) {
			return domainerrors.ErrInvalidTransition.WithDetails(string(campaign.Status) + " -> " + string(next))
		}

		if err := campaignRepo.UpdateCampaignStatus(ctx, campaignID, next); err != nil {
			return errors.Wrap(err, "failed to update campaign status")
		}

		campaign.Status = next
		updated = campaign

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Campaign status changed",
		slog.String("campaign_id", campaignID),
		slog.String("status", string(next)),
	)

	return updated, nil
}
