package repository

import (
	"context"

	"spaetimap/internal/domain/entity"
	"spaetimap/internal/errors"
)

// ErrAmenityNotFound is returned when an amenity id does not exist.
var ErrAmenityNotFound = errors.New("amenity not found")

// AmenityRepository provides CRUD over the amenity catalog.
type AmenityRepository interface {
	FindAll(ctx context.Context) ([]*entity.Amenity, error)
	FindByID(ctx context.Context, id string) (*entity.Amenity, error)
	Create(ctx context.Context, amenity *entity.Amenity) error
	Update(ctx context.Context, amenity *entity.Amenity) error
	// Delete removes the amenity and every junction row referencing it.
	// Spatis carrying the tag lose it; they are not deleted.
	Delete(ctx context.Context, id string) error
}
