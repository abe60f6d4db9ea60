package memory

import (
	"context"

	"unveil/internal/domain/entity"
	"unveil/internal/domain/repository"

	"github.com/pkg/errors"
)

// transactionManager implements the repository.TransactionManager interface.
// A transaction holds the table lock for its whole duration and works on a
// private copy of the campaigns, which replaces the table on commit.
type transactionManager struct {
	table *campaignTable
}

// NewTransactionManager creates a transaction manager over the campaign store of repo.
// repo must come from NewCampaignRepository.
func NewTransactionManager(repo repository.CampaignRepository) (repository.TransactionManager, error) {
	memRepo, ok := repo.(*campaignRepository)
	if !ok {
		return nil, errors.Errorf("transaction manager needs the in-memory campaign repository, got %T", repo)
	}

	return &transactionManager{table: memRepo.table}, nil
}

// Execute runs fn atomically.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	tm.table.mu.Lock()
	defer tm.table.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &txCampaignRepository{campaigns: cloneCampaigns(tm.table.campaigns)}
	if err := fn(&txRepositoryFactory{repo: tx}); err != nil {
		return err
	}

	tm.table.campaigns = tx.campaigns

	return nil
}

type txRepositoryFactory struct {
	repo *txCampaignRepository
}

// NewCampaignRepository returns the campaign repository bound to the transaction.
func (f *txRepositoryFactory) NewCampaignRepository() repository.CampaignRepository {
	return f.repo
}

// txCampaignRepository is a lock-free view used only inside Execute.
type txCampaignRepository struct {
	campaigns []*entity.Campaign
}

func (repo *txCampaignRepository) CreateCampaign(ctx context.Context, campaign *entity.Campaign) error {
	campaigns, err := appendCampaign(repo.campaigns, campaign)
	if err != nil {
		return err
	}
	repo.campaigns = campaigns

	return nil
}

func (repo *txCampaignRepository) FindCampaignByID(ctx context.Context, id string) (*entity.Campaign, error) {
	return findByID(repo.campaigns, id)
}

func (repo *txCampaignRepository) FindCampaignsByUser(ctx context.Context, userID string) ([]*entity.Campaign, error) {
	return findByUser(repo.campaigns, userID), nil
}

func (repo *txCampaignRepository) FindOpenCampaign(ctx context.Context, businessID, userID string) (*entity.Campaign, error) {
	return findOpen(repo.campaigns, businessID, userID)
}

func (repo *txCampaignRepository) UpdateCampaignStatus(ctx context.Context, id string, status entity.CampaignStatus) error {
	return updateStatus(repo.campaigns, id, status)
}

func cloneCampaigns(campaigns []*entity.Campaign) []*entity.Campaign {
	cloned := make([]*entity.Campaign, len(campaigns))
	for i, campaign := range campaigns {
		c := *campaign
		cloned[i] = &c
	}

	return cloned
}
