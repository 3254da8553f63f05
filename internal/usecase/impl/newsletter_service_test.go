package impl

import (
	"context"
	"testing"

	"spaetimap/internal/domain/entity"
	"spaetimap/internal/domain/repository"
	mockRepo "spaetimap/internal/mocks/repository"
	"spaetimap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNewsletterServiceForTest(t *testing.T) (usecase.NewsletterUsecase, *mockRepo.MockNewsletterRepository) {
	mockSubscriberRepo := mockRepo.NewMockNewsletterRepository(t)

	svc := NewNewsletterService(NewsletterServiceParams{
		SubscriberRepo: mockSubscriberRepo,
		Logger:         testLogger(),
	})

	return svc, mockSubscriberRepo
}

func TestNewsletterService_Subscribe_NewEmail(t *testing.T) {
	svc, mockSubscriberRepo := newNewsletterServiceForTest(t)
	ctx := context.Background()

	mockSubscriberRepo.EXPECT().FindByEmail(ctx, "fan@example.com").
		Return(nil, repository.ErrSubscriberNotFound)
	mockSubscriberRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NewsletterSubscriber")).
		RunAndReturn(func(_ context.Context, subscriber *entity.NewsletterSubscriber) error {
			assert.NotEmpty(t, subscriber.ID)
			assert.Equal(t, "fan@example.com", subscriber.Email)

			return nil
		})

	require.NoError(t, svc.Subscribe(ctx, &usecase.SubscribeInput{Email: "fan@example.com"}))
}

func TestNewsletterService_Subscribe_AlreadySubscribed(t *testing.T) {
	svc, mockSubscriberRepo := newNewsletterServiceForTest(t)
	ctx := context.Background()

	existing := &entity.NewsletterSubscriber{ID: uuid.NewString(), Email: "fan@example.com"}

	// Found means done; no insert happens.
	mockSubscriberRepo.EXPECT().FindByEmail(ctx, "fan@example.com").Return(existing, nil)

	require.NoError(t, svc.Subscribe(ctx, &usecase.SubscribeInput{Email: "fan@example.com"}))
}

func TestNewsletterService_Subscribe_DuplicateRaceIsSuccess(t *testing.T) {
	svc, mockSubscriberRepo := newNewsletterServiceForTest(t)
	ctx := context.Background()

	mockSubscriberRepo.EXPECT().FindByEmail(ctx, "fan@example.com").
		Return(nil, repository.ErrSubscriberNotFound)
	mockSubscriberRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NewsletterSubscriber")).
		Return(repository.ErrDuplicateSubscriber)

	require.NoError(t, svc.Subscribe(ctx, &usecase.SubscribeInput{Email: "fan@example.com"}))
}

func TestNewsletterService_Subscribe_TrimsEmail(t *testing.T) {
	svc, mockSubscriberRepo := newNewsletterServiceForTest(t)
	ctx := context.Background()

	existing := &entity.NewsletterSubscriber{ID: uuid.NewString(), Email: "fan@example.com"}
	mockSubscriberRepo.EXPECT().FindByEmail(ctx, "fan@example.com").Return(existing, nil)

	require.NoError(t, svc.Subscribe(ctx, &usecase.SubscribeInput{Email: "  fan@example.com  "}))
}

func TestNewsletterService_Subscribe_LookupError(t *testing.T) {
	svc, mockSubscriberRepo := newNewsletterServiceForTest(t)
	ctx := context.Background()

	mockSubscriberRepo.EXPECT().FindByEmail(ctx, "fan@example.com").
		Return(nil, errors.New("db down"))

	err := svc.Subscribe(ctx, &usecase.SubscribeInput{Email: "fan@example.com"})
	assert.Error(t, err)
}
