package postgres

import (
	"context"

	"spaetimap/internal/domain/entity"
	"spaetimap/internal/domain/repository"
	"spaetimap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// amenityRepository implements the repository.AmenityRepository interface.
type amenityRepository struct {
	db *gorm.DB
}

// NewAmenityRepository is the constructor for amenityRepository.
func NewAmenityRepository(db *gorm.DB) repository.AmenityRepository {
	return &amenityRepository{
		db: db,
	}
}

// FindAll returns every amenity ordered by name.
func (repo *amenityRepository) FindAll(ctx context.Context) ([]*entity.Amenity, error) {
	var amenityModels []*model.AmenityModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&amenityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find amenities")
	}

	amenities := make([]*entity.Amenity, 0, len(amenityModels))
	for _, amenityM := range amenityModels {
		amenities = append(amenities, toAmenityDomain(amenityM))
	}

	return amenities, nil
}

// FindByID retrieves an amenity by its id.
func (repo *amenityRepository) FindByID(ctx context.Context, id string) (*entity.Amenity, error) {
	var amenityM model.AmenityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&amenityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAmenityNotFound
		}

		return nil, errors.Wrap(err, "failed to find amenity by id")
	}

	return toAmenityDomain(&amenityM), nil
}

// Create persists a new amenity.
func (repo *amenityRepository) Create(ctx context.Context, amenity *entity.Amenity) error {
	amenityM := fromAmenityDomain(amenity)

	if err := repo.db.WithContext(ctx).Create(amenityM).Error; err != nil {
		return errors.Wrap(err, "failed to create amenity")
	}

	return nil
}

// Update fully replaces the amenity's columns, including a cleared image.
func (repo *amenityRepository) Update(ctx context.Context, amenity *entity.Amenity) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AmenityModel{}).
		Where("id = ?", amenity.ID).
		Select("name", "image_url").
		Updates(fromAmenityDomain(amenity))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update amenity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAmenityNotFound
	}

	return nil
}

// Delete removes the amenity and every junction row referencing it, so
// spatis lose the tag without being touched themselves.
func (repo *amenityRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("amenity_id = ?", id).
		Delete(&model.SpatiAmenityModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to detach amenity from spatis")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AmenityModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete amenity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAmenityNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAmenityDomain(data *model.AmenityModel) *entity.Amenity {
	if data == nil {
		return nil
	}

	return &entity.Amenity{
		ID:       data.ID,
		Name:     data.Name,
		ImageURL: data.ImageURL,
	}
}

func fromAmenityDomain(data *entity.Amenity) *model.AmenityModel {
	if data == nil {
		return nil
	}

	return &model.AmenityModel{
		ID:       data.ID,
		Name:     data.Name,
		ImageURL: data.ImageURL,
	}
}
