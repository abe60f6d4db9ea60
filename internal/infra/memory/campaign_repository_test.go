package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"unveil/internal/domain/entity"
	"unveil/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCampaign(id, businessID, userID string, status entity.CampaignStatus) *entity.Campaign {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	return &entity.Campaign{
		ID:         id,
		BusinessID: businessID,
		UserID:     userID,
		Status:     status,
		CreatedAt:  now,
		ExpiresAt:  now.Add(30 * 24 * time.Hour),
	}
}

func TestCampaignRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository()

	require.NoError(t, repo.CreateCampaign(ctx, newCampaign("c1", "biz_1", "user_1", entity.CampaignStatusActive)))

	found, err := repo.FindCampaignByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "biz_1", found.BusinessID)

	_, err = repo.FindCampaignByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrCampaignNotFound)

	err = repo.CreateCampaign(ctx, newCampaign("c1", "biz_2", "user_1", entity.CampaignStatusActive))
	assert.ErrorIs(t, err, repository.ErrDuplicateCampaign)
}

func TestCampaignRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository()
	original := newCampaign("c1", "biz_1", "user_1", entity.CampaignStatusActive)
	require.NoError(t, repo.CreateCampaign(ctx, original))

	original.Status = entity.CampaignStatusCanceled
	found, err := repo.FindCampaignByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusActive, found.Status)

	found.Status = entity.CampaignStatusCompleted
	again, err := repo.FindCampaignByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusActive, again.Status)
}

func TestCampaignRepository_FindCampaignsByUserKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository()
	require.NoError(t, repo.CreateCampaign(ctx, newCampaign("c1", "biz_1", "user_1", entity.CampaignStatusActive)))
	require.NoError(t, repo.CreateCampaign(ctx, newCampaign("c2", "biz_1", "user_2", entity.CampaignStatusActive)))
	require.NoError(t, repo.CreateCampaign(ctx, newCampaign("c3", "biz_2", "user_1", entity.CampaignStatusRejected)))

	campaigns, err := repo.FindCampaignsByUser(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "c3", campaigns[1].ID)

	none, err := repo.FindCampaignsByUser(ctx, "user_9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCampaignRepository_FindOpenCampaign(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository()
	require.NoError(t, repo.CreateCampaign(ctx, newCampaign("c1", "biz_1", "user_1", entity.CampaignStatusCompleted)))
	require.NoError(t, repo.CreateCampaign(ctx, newCampaign("c2", "biz_1", "user_1", entity.CampaignStatusRejected)))
	require.NoError(t, repo.CreateCampaign(ctx, newCampaign("c3", "biz_1", "user_1", entity.CampaignStatusActive)))

	open, err := repo.FindOpenCampaign(ctx, "biz_1", "user_1")
	require.NoError(t, err)
	assert.Equal(t, "c2", open.ID, "first campaign that does not end the relationship wins")

	_, err = repo.FindOpenCampaign(ctx, "biz_2", "user_1")
	assert.ErrorIs(t, err, repository.ErrCampaignNotFound)
}

func TestCampaignRepository_UpdateCampaignStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository()
	require.NoError(t, repo.CreateCampaign(ctx, newCampaign("c1", "biz_1", "user_1", entity.CampaignStatusActive)))

	require.NoError(t, repo.UpdateCampaignStatus(ctx, "c1", entity.CampaignStatusCanceled))
	found, err := repo.FindCampaignByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusCanceled, found.Status)

	assert.ErrorIs(t, repo.UpdateCampaignStatus(ctx, "nope", entity.CampaignStatusCanceled), repository.ErrCampaignNotFound)
}

func TestCampaignRepository_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository()

	err := repo.CreateCampaign(ctx, newCampaign("c1", "biz_1", "user_1", "archived"))
	assert.ErrorIs(t, err, repository.ErrInvalidCampaignStatus)

	require.NoError(t, repo.CreateCampaign(ctx, newCampaign("c2", "biz_1", "user_1", entity.CampaignStatusPending)))
	assert.ErrorIs(t, repo.UpdateCampaignStatus(ctx, "c2", ""), repository.ErrInvalidCampaignStatus)

	found, err := repo.FindCampaignByID(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusPending, found.Status)
}

func TestCampaignRepository_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.CreateCampaign(ctx, newCampaign(fmt.Sprintf("c%d", i), "biz_1", "user_1", entity.CampaignStatusActive)))
		}()
	}
	wg.Wait()

	campaigns, err := repo.FindCampaignsByUser(ctx, "user_1")
	require.NoError(t, err)
	assert.Len(t, campaigns, 50)
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository()
	tm, err := NewTransactionManager(repo)
	require.NoError(t, err)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewCampaignRepository().CreateCampaign(ctx, newCampaign("c1", "biz_1", "user_1", entity.CampaignStatusActive))
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		txRepo := f.NewCampaignRepository()
		if err := txRepo.CreateCampaign(ctx, newCampaign("c2", "biz_2", "user_1", entity.CampaignStatusActive)); err != nil {
			return err
		}
		if err := txRepo.UpdateCampaignStatus(ctx, "c1", entity.CampaignStatusCanceled); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	campaigns, err := repo.FindCampaignsByUser(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, entity.CampaignStatusActive, campaigns[0].Status)
}

func TestTransactionManager_CanceledContext(t *testing.T) {
	repo := NewCampaignRepository()
	tm, err := NewTransactionManager(repo)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err = tm.Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

type otherRepo struct {
	repository.CampaignRepository
}

func TestNewTransactionManager_RejectsForeignRepository(t *testing.T) {
	_, err := NewTransactionManager(otherRepo{})
	assert.Error(t, err)
}
