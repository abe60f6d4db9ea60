package impl

import (
	"context"
	"errors"
	"testing"

	"unveil/internal/domain/entity"
	domainerrors "unveil/internal/domain/errors"
	"unveil/internal/domain/repository"
	"unveil/internal/infra/memory"
	mockRepo "unveil/internal/mocks/repository"
	"unveil/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCampaignTestService(t *testing.T) (usecase.CampaignUsecase, *mockRepo.MockOfferCatalog, repository.CampaignRepository) {
	mockCatalog := mockRepo.NewMockOfferCatalog(t)
	campaignRepo := memory.NewCampaignRepository()
	txManager, err := memory.NewTransactionManager(campaignRepo)
	require.NoError(t, err)

	return NewCampaignService(mockCatalog, campaignRepo, txManager, discardLogger()), mockCatalog, campaignRepo
}

func seedCampaign(t *testing.T, repo repository.CampaignRepository, id, businessID string, status entity.CampaignStatus) {
	t.Helper()

	require.NoError(t, repo.CreateCampaign(context.Background(), &entity.Campaign{
		ID:         id,
		BusinessID: businessID,
		UserID:     "user_1",
		Status:     status,
	}))
}

func TestCampaignService_GetCampaignByID(t *testing.T) {
	svc, _, campaignRepo := newCampaignTestService(t)
	ctx := context.Background()
	seedCampaign(t, campaignRepo, "campaign_1", "biz_1", entity.CampaignStatusActive)

	campaign, err := svc.GetCampaignByID(ctx, "campaign_1")
	require.NoError(t, err)
	assert.Equal(t, "biz_1", campaign.BusinessID)

	campaign, err = svc.GetCampaignByID(ctx, "campaign_x")
	assert.ErrorIs(t, err, domainerrors.ErrCampaignNotFound)
	assert.Nil(t, campaign)
}

func TestCampaignService_GetCampaignByID_RepositoryError(t *testing.T) {
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	svc := NewCampaignService(mockRepo.NewMockOfferCatalog(t), mockCampaignRepo, nil, discardLogger())
	ctx := context.Background()
	repoErr := errors.New("store unavailable")

	mockCampaignRepo.EXPECT().FindCampaignByID(ctx, "campaign_1").Return(nil, repoErr)

	_, err := svc.GetCampaignByID(ctx, "campaign_1")
	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, domainerrors.ErrCampaignNotFound)
}

func TestCampaignService_GetUserCampaigns(t *testing.T) {
	svc, _, campaignRepo := newCampaignTestService(t)
	seedCampaign(t, campaignRepo, "campaign_1", "biz_1", entity.CampaignStatusRejected)
	seedCampaign(t, campaignRepo, "campaign_2", "biz_2", entity.CampaignStatusActive)

	campaigns, err := svc.GetUserCampaigns(context.Background(), "user_1")
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "campaign_1", campaigns[0].ID)
	assert.Equal(t, "campaign_2", campaigns[1].ID)

	campaigns, err = svc.GetUserCampaigns(context.Background(), "user_2")
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestCampaignService_GetUserApplicationStatus(t *testing.T) {
	svc, mockCatalog, campaignRepo := newCampaignTestService(t)
	ctx := context.Background()
	seedCampaign(t, campaignRepo, "campaign_1", "biz_1", entity.CampaignStatusCompleted)
	seedCampaign(t, campaignRepo, "campaign_2", "biz_1", entity.CampaignStatusPending)
	seedCampaign(t, campaignRepo, "campaign_3", "biz_2", entity.CampaignStatusCanceled)

	mockCatalog.EXPECT().FindOfferByID(ctx, "offer_1").Return(newRemoteOffer("offer_1", "biz_1", nil), nil)
	mockCatalog.EXPECT().FindOfferByID(ctx, "offer_2").Return(newRemoteOffer("offer_2", "biz_2", nil), nil)
	mockCatalog.EXPECT().FindOfferByID(ctx, "offer_x").Return(nil, repository.ErrOfferNotFound)

	status, err := svc.GetUserApplicationStatus(ctx, "offer_1", "user_1")
	require.NoError(t, err)
	assert.Equal(t, &usecase.ApplicationStatus{Applied: true, Status: entity.CampaignStatusPending}, status)

	status, err = svc.GetUserApplicationStatus(ctx, "offer_2", "user_1")
	require.NoError(t, err)
	assert.False(t, status.Applied)

	status, err = svc.GetUserApplicationStatus(ctx, "offer_x", "user_1")
	require.NoError(t, err)
	assert.False(t, status.Applied)
}

func TestCampaignService_HasUserAppliedToOffer(t *testing.T) {
	svc, mockCatalog, campaignRepo := newCampaignTestService(t)
	ctx := context.Background()
	seedCampaign(t, campaignRepo, "campaign_1", "biz_1", entity.CampaignStatusRejected)

	mockCatalog.EXPECT().FindOfferByID(ctx, "offer_1").Return(newRemoteOffer("offer_1", "biz_1", nil), nil)

	applied, err := svc.HasUserAppliedToOffer(ctx, "offer_1", "user_1")
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestCampaignService_GetAppliedOffersByUser(t *testing.T) {
	svc, mockCatalog, campaignRepo := newCampaignTestService(t)
	ctx := context.Background()
	seedCampaign(t, campaignRepo, "campaign_1", "biz_1", entity.CampaignStatusCanceled)
	seedCampaign(t, campaignRepo, "campaign_2", "biz_3", entity.CampaignStatusActive)

	mockCatalog.EXPECT().ListOffers(ctx).Return([]*entity.Offer{
		newRemoteOffer("offer_1", "biz_1", nil),
		newRemoteOffer("offer_2", "biz_1", nil),
		newRemoteOffer("offer_3", "biz_2", nil),
		newRemoteOffer("offer_4", "biz_3", nil),
	}, nil)

	offerIDs, err := svc.GetAppliedOffersByUser(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"offer_1", "offer_2", "offer_4"}, offerIDs)
}

func TestCampaignService_GetAppliedOffersByUser_NoCampaigns(t *testing.T) {
	svc, mockCatalog, _ := newCampaignTestService(t)
	ctx := context.Background()

	mockCatalog.EXPECT().ListOffers(ctx).Return([]*entity.Offer{newRemoteOffer("offer_1", "biz_1", nil)}, nil)

	offerIDs, err := svc.GetAppliedOffersByUser(ctx, "user_1")
	require.NoError(t, err)
	assert.NotNil(t, offerIDs)
	assert.Empty(t, offerIDs)
}

func TestCampaignService_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.CampaignStatus
		cancel  bool
		want    entity.CampaignStatus
		wantErr error
	}{
		{name: "cancel pending", from: entity.CampaignStatusPending, cancel: true, want: entity.CampaignStatusCanceled},
		{name: "cancel active", from: entity.CampaignStatusActive, cancel: true, want: entity.CampaignStatusCanceled},
		{name: "complete active", from: entity.CampaignStatusActive, want: entity.CampaignStatusCompleted},
		{name: "complete rejected", from: entity.CampaignStatusRejected, wantErr: domainerrors.ErrInvalidTransition},
		{name: "cancel completed", from: entity.CampaignStatusCompleted, cancel: true, wantErr: domainerrors.ErrInvalidTransition},
		{name: "complete canceled", from: entity.CampaignStatusCanceled, wantErr: domainerrors.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, campaignRepo := newCampaignTestService(t)
			ctx := context.Background()
			seedCampaign(t, campaignRepo, "campaign_1", "biz_1", tt.from)

			var (
				campaign *entity.Campaign
				err      error
			)
			if tt.cancel {
				campaign, err = svc.CancelCampaign(ctx, "campaign_1")
			} else {
				campaign, err = svc.CompleteCampaign(ctx, "campaign_1")
			}

			stored, findErr := campaignRepo.FindCampaignByID(ctx, "campaign_1")
			require.NoError(t, findErr)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, campaign)
				assert.Equal(t, tt.from, stored.Status)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, campaign.Status)
			assert.Equal(t, tt.want, stored.Status)
		})
	}
}

func TestCampaignService_CancelUnknownCampaign(t *testing.T) {
	svc, _, _ := newCampaignTestService(t)

	campaign, err := svc.CancelCampaign(context.Background(), "campaign_x")
	assert.ErrorIs(t, err, domainerrors.ErrCampaignNotFound)
	assert.Nil(t, campaign)
}
