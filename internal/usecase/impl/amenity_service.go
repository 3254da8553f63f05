package impl

import (
	"context"
	"log/slog"

	"spaetimap/internal/domain/entity"
	domainerrors "spaetimap/internal/domain/errors"
	"spaetimap/internal/domain/repository"
	"spaetimap/internal/domain/service"
	"spaetimap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// amenityService implements the AmenityUsecase interface.
type amenityService struct {
	txManager   repository.TransactionManager
	amenityRepo repository.AmenityRepository
	images      service.ImageStorage
	logger      *slog.Logger
}

// AmenityServiceParams holds dependencies for amenityService, injected by Fx.
type AmenityServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AmenityRepo repository.AmenityRepository
	Images      service.ImageStorage
	Logger      *slog.Logger
}

// NewAmenityService is the constructor for amenityService.
func NewAmenityService(params AmenityServiceParams) usecase.AmenityUsecase {
	return &amenityService{
		txManager:   params.TxManager,
		amenityRepo: params.AmenityRepo,
		images:      params.Images,
		logger:      params.Logger,
	}
}

// List returns every amenity.
func (srv *amenityService) List(ctx context.Context) ([]*entity.Amenity, error) {
	amenities, err := srv.amenityRepo.FindAll(ctx)

	return amenities, errors.Wrap(err, "failed to list amenities")
}

// Create persists a new amenity with its image.
func (srv *amenityService) Create(ctx context.Context, input *usecase.AmenityInput) (*entity.Amenity, error) {
	imageURL, err := resolveImage(ctx, srv.images, amenityImageFolder, nil, input.Image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store amenity image")
	}

	amenity := &entity.Amenity{
		ID:       uuid.NewString(),
		Name:     input.Name,
		ImageURL: imageURL,
	}

	if err := srv.amenityRepo.Create(ctx, amenity); err != nil {
		return nil, errors.Wrap(err, "failed to create amenity")
	}

	return amenity, nil
}

// Update replaces an existing amenity's fields, applying the image
// directive against the currently stored URL first.
func (srv *amenityService) Update(ctx context.Context, id string, input *usecase.AmenityInput) (*entity.Amenity, error) {
	current, err := srv.amenityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return nil, domainerrors.NewAmenityNotFound(id)
		}

		return nil, errors.Wrap(err, "failed to load amenity")
	}

	imageURL, err := resolveImage(ctx, srv.images, amenityImageFolder, current.ImageURL, input.Image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update amenity image")
	}

	amenity := &entity.Amenity{
		ID:       id,
		Name:     input.Name,
		ImageURL: imageURL,
	}

	if err := srv.amenityRepo.Update(ctx, amenity); err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return nil, domainerrors.NewAmenityNotFound(id)
		}

		return nil, errors.Wrap(err, "failed to update amenity")
	}

	return amenity, nil
}

// Delete removes the amenity's image blob, then its row and junction rows.
// Tagged spatis just lose the tag.
func (srv *amenityService) Delete(ctx context.Context, id string) error {
	current, err := srv.amenityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return domainerrors.NewAmenityNotFound(id)
		}

		return errors.Wrap(err, "failed to load amenity")
	}

	if current.ImageURL != nil {
		if err := srv.images.Delete(ctx, *current.ImageURL); err != nil {
			return errors.Wrap(err, "failed to delete amenity image")
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AmenityRepo().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return domainerrors.NewAmenityNotFound(id)
		}
		srv.logger.Error("Failed to delete amenity", slog.String("amenityID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete amenity")
	}

	return nil
}
