package repository

import "context"

// TransactionManager defines the interface for running campaign store operations atomically.
// This allows the use case layer to check-then-append without depending on a specific store implementation.
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, every change it made is discarded. Otherwise, it's committed.
	// All repository operations within the function will see the same consistent state.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// NewCampaignRepository returns a CampaignRepository instance bound to the current transaction.
	NewCampaignRepository() CampaignRepository
}
