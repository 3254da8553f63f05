package usecase

import (
	"context"

	"spaetimap/internal/domain/entity"
)

// AmenityInput carries the scalar state of an amenity.
type AmenityInput struct {
	Name  string `validate:"required"`
	Image ImageDirective
}

// AmenityUsecase is the read and admin-write surface for the amenity catalog.
type AmenityUsecase interface {
	List(ctx context.Context) ([]*entity.Amenity, error)
	Create(ctx context.Context, input *AmenityInput) (*entity.Amenity, error)
	Update(ctx context.Context, id string, input *AmenityInput) (*entity.Amenity, error)
	Delete(ctx context.Context, id string) error
}
