package impl

import (
	"context"
	"log/slog"
	"strings"

	"spaetimap/internal/domain/entity"
	"spaetimap/internal/domain/repository"
	"spaetimap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// newsletterService implements the NewsletterUsecase interface.
type newsletterService struct {
	subscriberRepo repository.NewsletterRepository
	logger         *slog.Logger
}

// NewsletterServiceParams holds dependencies for newsletterService, injected by Fx.
type NewsletterServiceParams struct {
	fx.In

	SubscriberRepo repository.NewsletterRepository
	Logger         *slog.Logger
}

// NewNewsletterService is the constructor for newsletterService.
func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		subscriberRepo: params.SubscriberRepo,
		logger:         params.Logger,
	}
}

// Subscribe adds an email to the newsletter list. Subscribing an address
// that is already on the list succeeds without creating a second row, so
// retries are safe.
func (srv *newsletterService) Subscribe(ctx context.Context, input *usecase.SubscribeInput) error {
	email := strings.TrimSpace(input.Email)

	_, err := srv.subscriberRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrSubscriberNotFound) {
		return errors.Wrap(err, "failed to look up subscriber")
	}

	subscriber := &entity.NewsletterSubscriber{
		ID:    uuid.NewString(),
		Email: email,
	}

	if err := srv.subscriberRepo.Create(ctx, subscriber); err != nil {
		// A concurrent subscribe can win the race between the lookup and
		// the insert. The address is on the list either way.
		if errors.Is(err, repository.ErrDuplicateSubscriber) {
			return nil
		}
		srv.logger.Error("Failed to create subscriber", slog.Any("error", err))

		return errors.Wrap(err, "failed to create subscriber")
	}

	return nil
}
