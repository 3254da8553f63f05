// Package repository defines the persistence interfaces the domain depends
// on, keeping the usecase layer independent of GORM.
package repository

import (
	"context"

	"spaetimap/internal/domain/entity"
	"spaetimap/internal/errors"
)

// ErrSpatiNotFound is returned when a spati id does not exist.
var ErrSpatiNotFound = errors.New("spati not found")

// SpatiRepository provides access to spati rows together with their
// amenity set and mood. Reads always return composite records: the amenity
// lookup is batched over the whole id set in a single query.
type SpatiRepository interface {
	// FindAll returns every spati ordered by name, each with its amenity
	// list (empty slice when untagged) and mood (nil when unset).
	FindAll(ctx context.Context) ([]*entity.Spati, error)
	// FindByID returns one composite spati record or ErrSpatiNotFound.
	FindByID(ctx context.Context, id string) (*entity.Spati, error)
	// Create persists a new spati row. Junction rows are written separately
	// through ReplaceAmenities.
	Create(ctx context.Context, spati *entity.Spati) error
	// Update fully replaces the scalar columns of an existing row and
	// returns ErrSpatiNotFound when the id is unknown.
	Update(ctx context.Context, spati *entity.Spati) error
	// Delete removes the row and its junction rows, or ErrSpatiNotFound.
	Delete(ctx context.Context, id string) error
	// ReplaceAmenities deletes all junction rows for the spati and inserts
	// one row per id in the de-duplicated list. Not a diff.
	ReplaceAmenities(ctx context.Context, spatiID string, amenityIDs []string) error
}
