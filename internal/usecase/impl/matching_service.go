package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"unveil/config"
	"unveil/internal/domain/entity"
	domainerrors "unveil/internal/domain/errors"
	"unveil/internal/domain/repository"
	"unveil/internal/domain/scoring"
	"unveil/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type matchingService struct {
	catalog      repository.OfferCatalog
	campaignRepo repository.CampaignRepository
	config       *config.MatchingConfig
	logger       *slog.Logger
}

// MatchingServiceParams holds dependencies for MatchingService, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	Catalog      repository.OfferCatalog
	CampaignRepo repository.CampaignRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewMatchingService creates a new matching service instance
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	matchingConfig := params.Config.Matching
	if matchingConfig == nil {
		matchingConfig = config.DefaultMatchingConfig()
	}

	return &matchingService{
		catalog:      params.Catalog,
		campaignRepo: params.CampaignRepo,
		config:       matchingConfig,
		logger:       params.Logger,
	}
}

// GetAllOffers returns the whole catalog in catalog order
func (s *matchingService) GetAllOffers(ctx context.Context) ([]*entity.Offer, error) {
	offers, err := s.catalog.ListOffers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return offers, nil
}

// GetOfferByID retrieves a single offer
func (s *matchingService) GetOfferByID(ctx context.Context, offerID string) (*entity.Offer, error) {
	offer, err := s.catalog.FindOfferByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound.WithDetails(offerID)
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return offer, nil
}

// GetMatchingOffers returns the primary feed: offers at or above the primary threshold, best first
func (s *matchingService) GetMatchingOffers(ctx context.Context, user *entity.User) ([]*entity.Offer, error) {
	matches, err := s.rank(ctx, user, s.config.PrimaryThreshold, false)
	if err != nil {
		return nil, err
	}

	offers := make([]*entity.Offer, len(matches))
	for i, match := range matches {
		offers[i] = match.Offer
	}

	return offers, nil
}

// GetMatchingOffersWithDetails returns the detailed feed with scores and match reasons
func (s *matchingService) GetMatchingOffersWithDetails(ctx context.Context, user *entity.User) ([]*usecase.OfferMatch, error) {
	return s.rank(ctx, user, s.config.DetailedThreshold, true)
}

// GetFeed returns the primary feed annotated with application state
func (s *matchingService) GetFeed(ctx context.Context, user *entity.User) ([]*usecase.FeedItem, error) {
	offers, err := s.GetMatchingOffers(ctx, user)
	if err != nil {
		return nil, err
	}

	items := make([]*usecase.FeedItem, 0, len(offers))
	for _, offer := range offers {
		item := &usecase.FeedItem{Offer: offer}

		campaign, err := s.campaignRepo.FindOpenCampaign(ctx, offer.BusinessID, user.ID)
		switch {
		case err == nil:
			item.Applied = true
			item.Status = campaign.Status
		case !errors.Is(err, repository.ErrCampaignNotFound):
			return nil, errors.Wrap(err, "failed to find open campaign")
		}

		items = append(items, item)
	}

	return items, nil
}

// rank scores every eligible offer, keeps those at or above threshold and
// sorts them by descending score. Equal scores keep catalog order.
func (s *matchingService) rank(ctx context.Context, user *entity.User, threshold float64, explain bool) ([]*usecase.OfferMatch, error) {
	if user == nil {
		return []*usecase.OfferMatch{}, nil
	}

	offers, err := s.catalog.ListOffers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	endedBusinesses, err := s.endedBusinesses(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	matches := make([]*usecase.OfferMatch, 0, len(offers))
	for _, offer := range offers {
		if _, ended := endedBusinesses[offer.BusinessID]; ended {
			continue
		}

		match := &usecase.OfferMatch{Offer: offer}
		if explain {
			result := scoring.Explain(offer, user)
			match.Score = result.Score
			match.Matches = result.Matches
		} else {
			match.Score = scoring.Score(offer, user)
		}

		s.logger.Debug("Offer scored",
			slog.String("offer_id", offer.ID),
			slog.String("user_id", user.ID),
			slog.Float64("score", match.Score),
		)

		if match.Score >= threshold {
			matches = append(matches, match)
		}
	}

	slices.SortStableFunc(matches, func(a, b *usecase.OfferMatch) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return matches, nil
}

// endedBusinesses returns the businesses whose relationship with the user was completed or canceled
func (s *matchingService) endedBusinesses(ctx context.Context, userID string) (map[string]struct{}, error) {
	campaigns, err := s.campaignRepo.FindCampaignsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find campaigns by user")
	}

	ended := make(map[string]struct{})
	for _, campaign := range campaigns {
		if campaign.Status.EndsRelationship() {
			ended[campaign.BusinessID] = struct{}{}
		}
	}

	return ended, nil
}
