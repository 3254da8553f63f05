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

// moodService implements the MoodUsecase interface.
type moodService struct {
	txManager repository.TransactionManager
	moodRepo  repository.MoodRepository
	images    service.ImageStorage
	logger    *slog.Logger
}

// MoodServiceParams holds dependencies for moodService, injected by Fx.
type MoodServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	MoodRepo  repository.MoodRepository
	Images    service.ImageStorage
	Logger    *slog.Logger
}

// NewMoodService is the constructor for moodService.
func NewMoodService(params MoodServiceParams) usecase.MoodUsecase {
	return &moodService{
		txManager: params.TxManager,
		moodRepo:  params.MoodRepo,
		images:    params.Images,
		logger:    params.Logger,
	}
}

// List returns every mood.
func (srv *moodService) List(ctx context.Context) ([]*entity.Mood, error) {
	moods, err := srv.moodRepo.FindAll(ctx)

	return moods, errors.Wrap(err, "failed to list moods")
}

// Create persists a new mood with its image.
func (srv *moodService) Create(ctx context.Context, input *usecase.MoodInput) (*entity.Mood, error) {
	imageURL, err := resolveImage(ctx, srv.images, moodImageFolder, nil, input.Image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store mood image")
	}

	mood := &entity.Mood{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Color:    input.Color,
		ImageURL: imageURL,
	}

	if err := srv.moodRepo.Create(ctx, mood); err != nil {
		return nil, errors.Wrap(err, "failed to create mood")
	}

	return mood, nil
}

// Update replaces an existing mood's fields, applying the image directive
// against the currently stored URL first.
func (srv *moodService) Update(ctx context.Context, id string, input *usecase.MoodInput) (*entity.Mood, error) {
	current, err := srv.moodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMoodNotFound) {
			return nil, domainerrors.NewMoodNotFound(id)
		}

		return nil, errors.Wrap(err, "failed to load mood")
	}

	imageURL, err := resolveImage(ctx, srv.images, moodImageFolder, current.ImageURL, input.Image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update mood image")
	}

	mood := &entity.Mood{
		ID:       id,
		Name:     input.Name,
		Color:    input.Color,
		ImageURL: imageURL,
	}

	if err := srv.moodRepo.Update(ctx, mood); err != nil {
		if errors.Is(err, repository.ErrMoodNotFound) {
			return nil, domainerrors.NewMoodNotFound(id)
		}

		return nil, errors.Wrap(err, "failed to update mood")
	}

	return mood, nil
}

// Delete removes the mood's image blob, then nulls the mood reference on
// every spati pointing at it and deletes the row. Spatis are never deleted.
func (srv *moodService) Delete(ctx context.Context, id string) error {
	current, err := srv.moodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMoodNotFound) {
			return domainerrors.NewMoodNotFound(id)
		}

		return errors.Wrap(err, "failed to load mood")
	}

	if current.ImageURL != nil {
		if err := srv.images.Delete(ctx, *current.ImageURL); err != nil {
			return errors.Wrap(err, "failed to delete mood image")
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.MoodRepo().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrMoodNotFound) {
			return domainerrors.NewMoodNotFound(id)
		}
		srv.logger.Error("Failed to delete mood", slog.String("moodID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete mood")
	}

	return nil
}
