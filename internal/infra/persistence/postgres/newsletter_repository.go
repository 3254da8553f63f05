package postgres

import (
	"context"

	"spaetimap/internal/domain/entity"
	"spaetimap/internal/domain/repository"
	"spaetimap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// newsletterRepository implements the repository.NewsletterRepository interface.
type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository is the constructor for newsletterRepository.
func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{
		db: db,
	}
}

// FindByEmail retrieves a subscriber by email.
func (repo *newsletterRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	var subscriberM model.NewsletterSubscriberModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&subscriberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriberNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscriber by email")
	}

	return toSubscriberDomain(&subscriberM), nil
}

// Create persists a new subscriber. A unique violation maps to
// ErrDuplicateSubscriber so racing subscribes stay idempotent.
func (repo *newsletterRepository) Create(ctx context.Context, subscriber *entity.NewsletterSubscriber) error {
	subscriberM := fromSubscriberDomain(subscriber)

	if err := repo.db.WithContext(ctx).Create(subscriberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscriber
		}

		return errors.Wrap(err, "failed to create subscriber")
	}

	subscriber.CreatedAt = subscriberM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toSubscriberDomain(data *model.NewsletterSubscriberModel) *entity.NewsletterSubscriber {
	if data == nil {
		return nil
	}

	return &entity.NewsletterSubscriber{
		ID:        data.ID,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
	}
}

func fromSubscriberDomain(data *entity.NewsletterSubscriber) *model.NewsletterSubscriberModel {
	if data == nil {
		return nil
	}

	return &model.NewsletterSubscriberModel{
		ID:        data.ID,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
	}
}
