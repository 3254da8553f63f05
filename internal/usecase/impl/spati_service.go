// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	domainerrors "spaetimap/internal/domain/errors"
	"spaetimap/internal/domain/repository"
	"spaetimap/internal/domain/service"
	"spaetimap/internal/usecase"

	"spaetimap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// spatiService implements the SpatiUsecase interface.
type spatiService struct {
	txManager repository.TransactionManager
	spatiRepo repository.SpatiRepository
	images    service.ImageStorage
	logger    *slog.Logger
}

// SpatiServiceParams holds dependencies for spatiService, injected by Fx.
type SpatiServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SpatiRepo repository.SpatiRepository
	Images    service.ImageStorage
	Logger    *slog.Logger
}

// NewSpatiService is the constructor for spatiService.
func NewSpatiService(params SpatiServiceParams) usecase.SpatiUsecase {
	return &spatiService{
		txManager: params.TxManager,
		spatiRepo: params.SpatiRepo,
		images:    params.Images,
		logger:    params.Logger,
	}
}

// List returns every spati with amenities and mood attached, optionally
// narrowed to stores within query.Radius meters of a point.
func (srv *spatiService) List(ctx context.Context, query *usecase.SpatiListQuery) ([]*entity.Spati, error) {
	spatis, err := srv.spatiRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spatis")
	}

	if query == nil || query.Radius <= 0 {
		return spatis, nil
	}

	center := orb.Point{query.Longitude, query.Latitude}
	nearby := make([]*entity.Spati, 0, len(spatis))
	for _, spati := range spatis {
		point := orb.Point{spati.Longitude, spati.Latitude}
		if geo.DistanceHaversine(center, point) <= query.Radius {
			nearby = append(nearby, spati)
		}
	}

	return nearby, nil
}

// Get returns one composite spati record.
func (srv *spatiService) Get(ctx context.Context, id string) (*entity.Spati, error) {
	spati, err := srv.spatiRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSpatiNotFound) {
			return nil, domainerrors.NewSpatiNotFound(id)
		}

		return nil, errors.Wrap(err, "failed to get spati")
	}

	return spati, nil
}

// Create persists a new spati with its image and amenity set, then
// re-reads the composite record.
func (srv *spatiService) Create(ctx context.Context, input *usecase.SpatiInput) (*entity.Spati, error) {
	id := uuid.NewString()

	imageURL, err := resolveImage(ctx, srv.images, spatiImageFolder, nil, input.Image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store spati image")
	}

	spati := spatiFromInput(id, input, imageURL)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.SpatiRepo()

		if err := repo.Create(ctx, spati); err != nil {
			return err
		}

		return repo.ReplaceAmenities(ctx, id, input.AmenityIDs)
	})
	if err != nil {
		srv.logger.Error("Failed to create spati", slog.String("spatiID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create spati")
	}

	return srv.Get(ctx, id)
}

// Update fully replaces an existing spati's scalar fields and amenity set.
// The row write and junction replace share one transaction; the image
// change happens before it and is not part of it.
func (srv *spatiService) Update(ctx context.Context, id string, input *usecase.SpatiInput) (*entity.Spati, error) {
	current, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	imageURL, err := resolveImage(ctx, srv.images, spatiImageFolder, current.ImageURL, input.Image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update spati image")
	}

	spati := spatiFromInput(id, input, imageURL)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.SpatiRepo()

		if err := repo.Update(ctx, spati); err != nil {
			return err
		}

		return repo.ReplaceAmenities(ctx, id, input.AmenityIDs)
	})
	if err != nil {
		if errors.Is(err, repository.ErrSpatiNotFound) {
			return nil, domainerrors.NewSpatiNotFound(id)
		}
		srv.logger.Error("Failed to update spati", slog.String("spatiID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update spati")
	}

	return srv.Get(ctx, id)
}

// Delete removes the spati's image blob, then its row and junction rows.
// A blob failure aborts before any database mutation.
func (srv *spatiService) Delete(ctx context.Context, id string) error {
	current, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if current.ImageURL != nil {
		if err := srv.images.Delete(ctx, *current.ImageURL); err != nil {
			return errors.Wrap(err, "failed to delete spati image")
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SpatiRepo().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrSpatiNotFound) {
			return domainerrors.NewSpatiNotFound(id)
		}

		return errors.Wrap(err, "failed to delete spati")
	}

	return nil
}

func spatiFromInput(id string, input *usecase.SpatiInput, imageURL *string) *entity.Spati {
	return &entity.Spati{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     input.Address,
		Hours:       input.Hours,
		Type:        input.Type,
		Rating:      input.Rating,
		ImageURL:    imageURL,
		MoodID:      input.MoodID,
	}
}
