package impl

import (
	"context"
	"testing"

	"spaetimap/internal/domain/entity"
	domainerrors "spaetimap/internal/domain/errors"
	"spaetimap/internal/domain/repository"
	mockRepo "spaetimap/internal/mocks/repository"
	mockSvc "spaetimap/internal/mocks/service"
	"spaetimap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMoodServiceForTest(t *testing.T) (usecase.MoodUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockMoodRepository, *mockSvc.MockImageStorage) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockMoodRepo := mockRepo.NewMockMoodRepository(t)
	mockImages := mockSvc.NewMockImageStorage(t)

	svc := NewMoodService(MoodServiceParams{
		TxManager: mockTx,
		MoodRepo:  mockMoodRepo,
		Images:    mockImages,
		Logger:    testLogger(),
	})

	return svc, mockTx, mockMoodRepo, mockImages
}

func TestMoodService_Create(t *testing.T) {
	svc, _, mockMoodRepo, _ := newMoodServiceForTest(t)
	ctx := context.Background()

	mockMoodRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Mood")).
		RunAndReturn(func(_ context.Context, mood *entity.Mood) error {
			assert.NotEmpty(t, mood.ID)
			assert.Equal(t, "Chill", mood.Name)
			assert.Equal(t, "#4ade80", mood.Color)
			assert.Nil(t, mood.ImageURL)

			return nil
		})

	mood, err := svc.Create(ctx, &usecase.MoodInput{
		Name:  "Chill",
		Color: "#4ade80",
		Image: usecase.ImageDirective{Op: usecase.ImageKeep},
	})
	require.NoError(t, err)
	assert.Equal(t, "Chill", mood.Name)
}

func TestMoodService_Update_RemoveImageDeletesBlob(t *testing.T) {
	svc, _, mockMoodRepo, mockImages := newMoodServiceForTest(t)
	ctx := context.Background()

	id := uuid.NewString()
	oldURL := "https://storage.googleapis.com/spaetimap/moods/party.png"

	mockMoodRepo.EXPECT().FindByID(ctx, id).
		Return(&entity.Mood{ID: id, Name: "Party", Color: "#ff0000", ImageURL: &oldURL}, nil)
	mockImages.EXPECT().Delete(ctx, oldURL).Return(nil)
	mockMoodRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Mood")).
		RunAndReturn(func(_ context.Context, mood *entity.Mood) error {
			assert.Nil(t, mood.ImageURL)

			return nil
		})

	mood, err := svc.Update(ctx, id, &usecase.MoodInput{
		Name:  "Party",
		Color: "#ff0000",
		Image: usecase.ImageDirective{Op: usecase.ImageRemove},
	})
	require.NoError(t, err)
	assert.Nil(t, mood.ImageURL)
}

func TestMoodService_Delete_NotFound(t *testing.T) {
	svc, _, mockMoodRepo, _ := newMoodServiceForTest(t)
	ctx := context.Background()

	mockMoodRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrMoodNotFound)

	err := svc.Delete(ctx, "missing")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MOOD_NOT_FOUND", appErr.ErrorCode())
}

func TestMoodService_Delete_Success(t *testing.T) {
	svc, mockTx, mockMoodRepo, _ := newMoodServiceForTest(t)
	ctx := context.Background()

	id := uuid.NewString()

	mockMoodRepo.EXPECT().FindByID(ctx, id).
		Return(&entity.Mood{ID: id, Name: "Cozy", Color: "#ffaa00"}, nil)
	mockMoodRepo.EXPECT().Delete(ctx, id).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().MoodRepo().Return(mockMoodRepo)
	mockTx.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	require.NoError(t, svc.Delete(ctx, id))
}
