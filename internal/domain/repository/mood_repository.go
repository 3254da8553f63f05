package repository

import (
	"context"

	"spaetimap/internal/domain/entity"
	"spaetimap/internal/errors"
)

// ErrMoodNotFound is returned when a mood id does not exist.
var ErrMoodNotFound = errors.New("mood not found")

// MoodRepository provides CRUD over the mood taxonomy.
type MoodRepository interface {
	FindAll(ctx context.Context) ([]*entity.Mood, error)
	FindByID(ctx context.Context, id string) (*entity.Mood, error)
	Create(ctx context.Context, mood *entity.Mood) error
	Update(ctx context.Context, mood *entity.Mood) error
	// Delete nulls the mood reference on every spati pointing at it before
	// removing the row. Referencing spatis are never deleted.
	Delete(ctx context.Context, id string) error
}
