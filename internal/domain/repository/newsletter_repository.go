package repository

import (
	"context"

	"spaetimap/internal/domain/entity"
	"spaetimap/internal/errors"
)

// ErrSubscriberNotFound is returned when no subscriber matches the email.
var ErrSubscriberNotFound = errors.New("newsletter subscriber not found")

// ErrDuplicateSubscriber is returned on a unique violation when two
// subscribes for the same email race; callers treat it as success.
var ErrDuplicateSubscriber = errors.New("newsletter subscriber already exists")

// NewsletterRepository stores newsletter signups.
type NewsletterRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error)
	Create(ctx context.Context, subscriber *entity.NewsletterSubscriber) error
}
