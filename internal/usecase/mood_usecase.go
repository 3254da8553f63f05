package usecase

import (
	"context"

	"spaetimap/internal/domain/entity"
)

// MoodInput carries the scalar state of a mood.
type MoodInput struct {
	Name  string `validate:"required"`
	Color string `validate:"required,hexcolor"`
	Image ImageDirective
}

// MoodUsecase is the read and admin-write surface for the mood taxonomy.
type MoodUsecase interface {
	List(ctx context.Context) ([]*entity.Mood, error)
	Create(ctx context.Context, input *MoodInput) (*entity.Mood, error)
	Update(ctx context.Context, id string, input *MoodInput) (*entity.Mood, error)
	Delete(ctx context.Context, id string) error
}
