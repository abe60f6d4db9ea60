package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"unveil/config"
	"unveil/internal/domain/entity"
	domainerrors "unveil/internal/domain/errors"
	"unveil/internal/domain/repository"
	"unveil/internal/domain/service"
	"unveil/internal/infra/validator"
	"unveil/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	acceptedMessageFormat = "¡El negocio ha aceptado tu propuesta para %s!"
	rejectedMessage       = "El negocio ha seleccionado a otro creador para esta oferta."
	messageDateLayout     = "2/1/2006"
)

type proposalService struct {
	catalog      repository.OfferCatalog
	campaignRepo repository.CampaignRepository
	txManager    repository.TransactionManager
	policy       service.DecisionPolicy
	clock        service.Clock
	validator    *validator.Validator
	config       *config.ProposalConfig
	logger       *slog.Logger
}

// ProposalServiceParams holds dependencies for ProposalService, injected by Fx.
type ProposalServiceParams struct {
	fx.In

	Catalog      repository.OfferCatalog
	CampaignRepo repository.CampaignRepository
	TxManager    repository.TransactionManager
	Policy       service.DecisionPolicy
	Clock        service.Clock
	Validator    *validator.Validator
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProposalService creates a new proposal service instance
func NewProposalService(params ProposalServiceParams) usecase.ProposalUsecase {
	proposalConfig := params.Config.Proposal
	if proposalConfig == nil {
		proposalConfig = config.DefaultProposalConfig()
	}

	return &proposalService{
		catalog:      params.Catalog,
		campaignRepo: params.CampaignRepo,
		txManager:    params.TxManager,
		policy:       params.Policy,
		clock:        params.Clock,
		validator:    params.Validator,
		config:       proposalConfig,
		logger:       params.Logger,
	}
}

// SubmitProposal waits for the simulated business answer, records the resulting campaign and returns the answer.
// A campaign is appended whatever the verdict.
//
// The wait is bound to ctx. Canceling ctx before the answer arrives returns the context error and
// leaves both the store and the decision policy untouched. This differs from a detached timer, which
// would still record the campaign after the caller gave up.
func (s *proposalService) SubmitProposal(ctx context.Context, input *usecase.SubmitProposalInput) (*entity.BusinessResponse, error) {
	proposal, err := s.buildProposal(input)
	if err != nil {
		return nil, err
	}

	offer, err := s.catalog.FindOfferByID(ctx, proposal.OfferID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound.WithDetails(proposal.OfferID)
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	// Fail fast before the simulated wait; the check is repeated atomically below.
	if err := s.ensureNoOpenCampaign(ctx, s.campaignRepo, offer.BusinessID, proposal.CreatorID); err != nil {
		return nil, err
	}

	if err := s.awaitResponse(ctx); err != nil {
		return nil, err
	}

	var (
		decision entity.Decision
		campaign *entity.Campaign
	)
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		campaignRepo := txRepoFactory.NewCampaignRepository()
		if err := s.ensureNoOpenCampaign(ctx, campaignRepo, offer.BusinessID, proposal.CreatorID); err != nil {
			return err
		}

		var err error
		decision, err = s.policy.Decide(ctx, proposal, offer)
		if err != nil {
			return errors.Wrap(err, "failed to decide proposal")
		}

		campaign = s.newCampaign(offer, proposal, decision)
		if err := campaignRepo.CreateCampaign(ctx, campaign); err != nil {
			return errors.Wrap(err, "failed to create campaign")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	response := &entity.BusinessResponse{
		OfferID:   proposal.OfferID,
		CreatorID: proposal.CreatorID,
		Accepted:  decision.Accepted,
		Message:   rejectedMessage,
		Campaign:  campaign,
	}
	if decision.Accepted {
		selected := proposal.ProposedDates[0]
		response.SelectedDate = &selected
		response.Message = fmt.Sprintf(acceptedMessageFormat, selected.Format(messageDateLayout))
	}

	s.logger.Info("Proposal answered",
		slog.String("offer_id", proposal.OfferID),
		slog.String("creator_id", proposal.CreatorID),
		slog.String("campaign_id", campaign.ID),
		slog.Bool("accepted", decision.Accepted),
		slog.String("reason", decision.Reason),
	)

	return response, nil
}

// buildProposal validates the input shape and rejects dates before today
func (s *proposalService) buildProposal(input *usecase.SubmitProposalInput) (*entity.CreatorProposal, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidProposal.WithDetails("proposal is required")
	}

	proposal := &entity.CreatorProposal{
		OfferID:       input.OfferID,
		CreatorID:     input.CreatorID,
		ProposedDates: input.ProposedDates,
		Message:       input.Message,
		Creator:       input.Creator,
	}
	if err := s.validator.Struct(proposal); err != nil {
		return nil, domainerrors.ErrInvalidProposal.WithDetails(err.Error())
	}

	today := startOfDay(s.clock.Now())
	for _, date := range proposal.ProposedDates {
		if startOfDay(date.In(today.Location())).Before(today) {
			return nil, domainerrors.ErrInvalidProposal.WithDetails(
				fmt.Sprintf("proposed date %s is in the past", date.Format(time.DateOnly)))
		}
	}

	return proposal, nil
}

func (s *proposalService) ensureNoOpenCampaign(ctx context.Context, campaignRepo repository.CampaignRepository, businessID, userID string) error {
	if !s.config.EnforceSingleOpenCampaign {
		return nil
	}

	open, err := campaignRepo.FindOpenCampaign(ctx, businessID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find open campaign")
	}

	return domainerrors.ErrActiveCampaignExists.WithDetails(open.ID)
}

// awaitResponse simulates the business taking its time to answer
func (s *proposalService) awaitResponse(ctx context.Context) error {
	if s.config.ResponseDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.config.ResponseDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "proposal abandoned before the business answered")
	case <-timer.C:
		return nil
	}
}

func (s *proposalService) newCampaign(offer *entity.Offer, proposal *entity.CreatorProposal, decision entity.Decision) *entity.Campaign {
	now := s.clock.Now()

	status := entity.CampaignStatusRejected
	if decision.Accepted {
		status = entity.CampaignStatusActive
	}

	return &entity.Campaign{
		ID:         newCampaignID(now),
		BusinessID: offer.BusinessID,
		UserID:     proposal.CreatorID,
		OfferID:    offer.ID,
		Status:     status,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.config.CampaignTTL),
	}
}

// newCampaignID derives the ID from the creation time; the random suffix keeps IDs unique within a millisecond
func newCampaignID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return fmt.Sprintf("campaign_%d_%s", now.UnixMilli(), suffix)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
