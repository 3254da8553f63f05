// Package usecase defines the application's business interfaces and DTOs.
package usecase

import (
	"context"

	"spaetimap/internal/domain/entity"
)

// SpatiInput carries the full scalar state of a spati plus its requested
// amenity set. Updates are full replaces: an omitted amenity list defaults
// to empty and therefore clears the set.
type SpatiInput struct {
	Name        string   `validate:"required"`
	Description string   `validate:"required"`
	Latitude    float64  `validate:"min=-90,max=90"`
	Longitude   float64  `validate:"min=-180,max=180"`
	Address     string   `validate:"required"`
	Hours       string   `validate:"required"`
	Type        string   `validate:"required"`
	Rating      float64  `validate:"min=0,max=5"`
	AmenityIDs  []string `validate:"dive,min=1"`
	MoodID      *string
	Image       ImageDirective
}

// SpatiListQuery optionally narrows the public listing to stores within
// Radius meters of a point.
type SpatiListQuery struct {
	Latitude  float64
	Longitude float64
	Radius    float64
}

// SpatiUsecase is the read and admin-write surface for the location catalog.
type SpatiUsecase interface {
	List(ctx context.Context, query *SpatiListQuery) ([]*entity.Spati, error)
	Get(ctx context.Context, id string) (*entity.Spati, error)
	Create(ctx context.Context, input *SpatiInput) (*entity.Spati, error)
	Update(ctx context.Context, id string, input *SpatiInput) (*entity.Spati, error)
	Delete(ctx context.Context, id string) error
}
