package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
type RepositoryFactory interface {
	SpatiRepo() SpatiRepository
	AmenityRepo() AmenityRepository
	MoodRepo() MoodRepository
}

// TransactionManager runs a function within a single database transaction.
// Blob-store operations are never part of the transaction; only row and
// junction writes are atomic together.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
