// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"spaetimap/internal/domain/entity"
	"spaetimap/internal/domain/repository"
	"spaetimap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// spatiRepository implements the repository.SpatiRepository interface.
type spatiRepository struct {
	db *gorm.DB
}

// NewSpatiRepository is the constructor for spatiRepository.
func NewSpatiRepository(db *gorm.DB) repository.SpatiRepository {
	return &spatiRepository{
		db: db,
	}
}

// spatiScalarColumns are the columns fully replaced on every update.
var spatiScalarColumns = []string{
	"store_name", "description", "lat", "lng", "address",
	"opening_hours", "store_type", "rating", "image_url", "mood_id",
}

// FindAll returns every spati ordered by name, each assembled with its
// mood and amenity set. The amenity lookup is one batched query over the
// whole id set, not one query per spati.
func (repo *spatiRepository) FindAll(ctx context.Context) ([]*entity.Spati, error) {
	var spatiModels []*model.SpatiModel

	if err := repo.db.WithContext(ctx).
		Preload("Mood").
		Order("store_name ASC").
		Find(&spatiModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find spatis")
	}

	ids := make([]string, 0, len(spatiModels))
	for _, spatiM := range spatiModels {
		ids = append(ids, spatiM.ID)
	}

	amenitySets, err := repo.loadAmenitySets(ctx, ids)
	if err != nil {
		return nil, err
	}

	spatis := make([]*entity.Spati, 0, len(spatiModels))
	for _, spatiM := range spatiModels {
		spatis = append(spatis, toSpatiDomain(spatiM, amenitySets[spatiM.ID]))
	}

	return spatis, nil
}

// FindByID returns one composite spati record or repository.ErrSpatiNotFound.
func (repo *spatiRepository) FindByID(ctx context.Context, id string) (*entity.Spati, error) {
	var spatiM model.SpatiModel

	if err := repo.db.WithContext(ctx).
		Preload("Mood").
		Where("id = ?", id).
		First(&spatiM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpatiNotFound
		}

		return nil, errors.Wrap(err, "failed to find spati by id")
	}

	amenitySets, err := repo.loadAmenitySets(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	return toSpatiDomain(&spatiM, amenitySets[id]), nil
}

// Create persists a new spati row.
func (repo *spatiRepository) Create(ctx context.Context, spati *entity.Spati) error {
	spatiM := fromSpatiDomain(spati)

	if err := repo.db.WithContext(ctx).Create(spatiM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "spati references an unknown mood")
		}

		return errors.Wrap(err, "failed to create spati")
	}

	return nil
}

// Update fully replaces the scalar columns of an existing row, explicitly
// including nullable ones so a cleared image or mood is written as NULL.
func (repo *spatiRepository) Update(ctx context.Context, spati *entity.Spati) error {
	spatiM := fromSpatiDomain(spati)

	result := repo.db.WithContext(ctx).
		Model(&model.SpatiModel{}).
		Where("id = ?", spati.ID).
		Select(spatiScalarColumns).
		Updates(spatiM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update spati")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSpatiNotFound
	}

	return nil
}

// Delete removes the row and its junction rows.
func (repo *spatiRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("spati_id = ?", id).
		Delete(&model.SpatiAmenityModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete spati amenity rows")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SpatiModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete spati")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSpatiNotFound
	}

	return nil
}

// ReplaceAmenities deletes all junction rows for the spati then inserts the
// de-duplicated requested set. A full replace, never a diff.
func (repo *spatiRepository) ReplaceAmenities(ctx context.Context, spatiID string, amenityIDs []string) error {
	if err := repo.db.WithContext(ctx).
		Where("spati_id = ?", spatiID).
		Delete(&model.SpatiAmenityModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear spati amenity rows")
	}

	unique := dedupeIDs(amenityIDs)
	if len(unique) == 0 {
		return nil
	}

	rows := make([]*model.SpatiAmenityModel, 0, len(unique))
	for _, amenityID := range unique {
		rows = append(rows, &model.SpatiAmenityModel{
			SpatiID:   spatiID,
			AmenityID: amenityID,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "amenity set references an unknown amenity")
		}

		return errors.Wrap(err, "failed to insert spati amenity rows")
	}

	return nil
}

// spatiAmenityJoinRow is the scan target for the batched junction join.
type spatiAmenityJoinRow struct {
	SpatiID   string  `gorm:"column:spati_id"`
	AmenityID string  `gorm:"column:amenity_id"`
	Name      string  `gorm:"column:name"`
	ImageURL  *string `gorm:"column:image_url"`
}

// loadAmenitySets joins the junction table to the amenity table for the
// whole id set in one query and maps spati id to its amenity list.
func (repo *spatiRepository) loadAmenitySets(ctx context.Context, spatiIDs []string) (map[string][]*entity.Amenity, error) {
	if len(spatiIDs) == 0 {
		return amenitySetsFromRows(spatiIDs, nil), nil
	}

	var rows []*spatiAmenityJoinRow
	if err := repo.db.WithContext(ctx).
		Table("spati_amenities").
		Select("spati_amenities.spati_id AS spati_id, amenities.id AS amenity_id, amenities.name AS name, amenities.image_url AS image_url").
		Joins("INNER JOIN amenities ON amenities.id = spati_amenities.amenity_id").
		Where("spati_amenities.spati_id IN ?", spatiIDs).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load spati amenities")
	}

	return amenitySetsFromRows(spatiIDs, rows), nil
}

// amenitySetsFromRows groups the join rows by spati id. Every requested id
// appears as a key, with an empty slice when untagged.
func amenitySetsFromRows(spatiIDs []string, rows []*spatiAmenityJoinRow) map[string][]*entity.Amenity {
	sets := make(map[string][]*entity.Amenity, len(spatiIDs))
	for _, id := range spatiIDs {
		sets[id] = []*entity.Amenity{}
	}

	for _, row := range rows {
		sets[row.SpatiID] = append(sets[row.SpatiID], &entity.Amenity{
			ID:       row.AmenityID,
			Name:     row.Name,
			ImageURL: row.ImageURL,
		})
	}

	return sets
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}

// --- Mapper Functions ---

// toSpatiDomain converts a GORM SpatiModel to a domain Spati entity.
func toSpatiDomain(data *model.SpatiModel, amenities []*entity.Amenity) *entity.Spati {
	if data == nil {
		return nil
	}
	if amenities == nil {
		amenities = []*entity.Amenity{}
	}

	return &entity.Spati{
		ID:          data.ID,
		Name:        data.StoreName,
		Description: data.Description,
		Latitude:    data.Lat,
		Longitude:   data.Lng,
		Address:     data.Address,
		Hours:       data.OpeningHours,
		Type:        data.StoreType,
		Rating:      data.Rating,
		ImageURL:    data.ImageURL,
		MoodID:      data.MoodID,
		Mood:        toMoodDomain(data.Mood),
		Amenities:   amenities,
	}
}

// fromSpatiDomain converts a domain Spati entity to a GORM SpatiModel.
func fromSpatiDomain(data *entity.Spati) *model.SpatiModel {
	if data == nil {
		return nil
	}

	return &model.SpatiModel{
		ID:           data.ID,
		StoreName:    data.Name,
		Description:  data.Description,
		Lat:          data.Latitude,
		Lng:          data.Longitude,
		Address:      data.Address,
		OpeningHours: data.Hours,
		StoreType:    data.Type,
		Rating:       data.Rating,
		ImageURL:     data.ImageURL,
		MoodID:       data.MoodID,
	}
}
