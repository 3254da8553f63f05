package postgres

import (
	"context"

	"spaetimap/internal/domain/entity"
	"spaetimap/internal/domain/repository"
	"spaetimap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// moodRepository implements the repository.MoodRepository interface.
type moodRepository struct {
	db *gorm.DB
}

// NewMoodRepository is the constructor for moodRepository.
func NewMoodRepository(db *gorm.DB) repository.MoodRepository {
	return &moodRepository{
		db: db,
	}
}

// FindAll returns every mood ordered by name.
func (repo *moodRepository) FindAll(ctx context.Context) ([]*entity.Mood, error) {
	var moodModels []*model.MoodModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&moodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find moods")
	}

	moods := make([]*entity.Mood, 0, len(moodModels))
	for _, moodM := range moodModels {
		moods = append(moods, toMoodDomain(moodM))
	}

	return moods, nil
}

// FindByID retrieves a mood by its id.
func (repo *moodRepository) FindByID(ctx context.Context, id string) (*entity.Mood, error) {
	var moodM model.MoodModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&moodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find mood by id")
	}

	return toMoodDomain(&moodM), nil
}

// Create persists a new mood.
func (repo *moodRepository) Create(ctx context.Context, mood *entity.Mood) error {
	moodM := fromMoodDomain(mood)

	if err := repo.db.WithContext(ctx).Create(moodM).Error; err != nil {
		return errors.Wrap(err, "failed to create mood")
	}

	return nil
}

// Update fully replaces the mood's columns, including a cleared image.
func (repo *moodRepository) Update(ctx context.Context, mood *entity.Mood) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MoodModel{}).
		Where("id = ?", mood.ID).
		Select("name", "color", "image_url").
		Updates(fromMoodDomain(mood))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update mood")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMoodNotFound
	}

	return nil
}

// Delete nulls the mood reference on every spati pointing at this mood
// before removing the row. Set-null cascade, never a spati delete.
func (repo *moodRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.SpatiModel{}).
		Where("mood_id = ?", id).
		Update("mood_id", nil).Error; err != nil {
		return errors.Wrap(err, "failed to detach mood from spatis")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MoodModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete mood")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMoodNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMoodDomain(data *model.MoodModel) *entity.Mood {
	if data == nil {
		return nil
	}

	return &entity.Mood{
		ID:       data.ID,
		Name:     data.Name,
		Color:    data.Color,
		ImageURL: data.ImageURL,
	}
}

func fromMoodDomain(data *entity.Mood) *model.MoodModel {
	if data == nil {
		return nil
	}

	return &model.MoodModel{
		ID:       data.ID,
		Name:     data.Name,
		Color:    data.Color,
		ImageURL: data.ImageURL,
	}
}
