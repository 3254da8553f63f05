package postgres

import (
	"context"
	"fmt"

	"spaetimap/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// SpatiRepo creates a spati repository instance bound to the transaction.
func (f *gormRepositoryFactory) SpatiRepo() repository.SpatiRepository {
	return NewSpatiRepository(f.tx)
}

// AmenityRepo creates an amenity repository instance bound to the transaction.
func (f *gormRepositoryFactory) AmenityRepo() repository.AmenityRepository {
	return NewAmenityRepository(f.tx)
}

// MoodRepo creates a mood repository instance bound to the transaction.
func (f *gormRepositoryFactory) MoodRepo() repository.MoodRepository {
	return NewMoodRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Always roll back on panic so a failing handler cannot leave a
	// dangling transaction behind.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
