package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "spaetimap/internal/domain/errors"
	"spaetimap/internal/domain/entity"
	"spaetimap/internal/domain/repository"
	"spaetimap/internal/domain/service"
	mockRepo "spaetimap/internal/mocks/repository"
	mockSvc "spaetimap/internal/mocks/service"
	"spaetimap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSpatiServiceForTest(t *testing.T) (usecase.SpatiUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockSpatiRepository, *mockSvc.MockImageStorage) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockSpatiRepo := mockRepo.NewMockSpatiRepository(t)
	mockImages := mockSvc.NewMockImageStorage(t)

	svc := NewSpatiService(SpatiServiceParams{
		TxManager: mockTx,
		SpatiRepo: mockSpatiRepo,
		Images:    mockImages,
		Logger:    testLogger(),
	})

	return svc, mockTx, mockSpatiRepo, mockImages
}

// expectTransaction makes the transaction manager run the callback against
// a factory handing out the given spati repository.
func expectTransaction(t *testing.T, mockTx *mockRepo.MockTransactionManager, mockSpatiRepo *mockRepo.MockSpatiRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SpatiRepo().Return(mockSpatiRepo)

	mockTx.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestSpatiService_List_NoFilter(t *testing.T) {
	svc, _, mockSpatiRepo, _ := newSpatiServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.Spati{
		{ID: uuid.NewString(), Name: "Berghain Kiosk", Latitude: 52.511, Longitude: 13.443},
		{ID: uuid.NewString(), Name: "Wedding Nights", Latitude: 52.549, Longitude: 13.355},
	}

	mockSpatiRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	spatis, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, spatis)
}

func TestSpatiService_List_RadiusFilter(t *testing.T) {
	svc, _, mockSpatiRepo, _ := newSpatiServiceForTest(t)
	ctx := context.Background()

	near := &entity.Spati{ID: uuid.NewString(), Name: "Alexanderplatz 24h", Latitude: 52.5219, Longitude: 13.4132}
	far := &entity.Spati{ID: uuid.NewString(), Name: "Spandau Corner", Latitude: 52.5354, Longitude: 13.1977}

	mockSpatiRepo.EXPECT().FindAll(ctx).Return([]*entity.Spati{near, far}, nil)

	// Center on Alexanderplatz with a 2km radius; Spandau is ~15km away.
	spatis, err := svc.List(ctx, &usecase.SpatiListQuery{
		Latitude:  52.5219,
		Longitude: 13.4132,
		Radius:    2000,
	})
	require.NoError(t, err)
	require.Len(t, spatis, 1)
	assert.Equal(t, near.ID, spatis[0].ID)
}

func TestSpatiService_Get_NotFound(t *testing.T) {
	svc, _, mockSpatiRepo, _ := newSpatiServiceForTest(t)
	ctx := context.Background()

	mockSpatiRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrSpatiNotFound)

	spati, err := svc.Get(ctx, "missing")
	assert.Nil(t, spati)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SPATI_NOT_FOUND", appErr.ErrorCode())
}

func TestSpatiService_Create_UploadsImageAndReplacesAmenities(t *testing.T) {
	svc, mockTx, mockSpatiRepo, mockImages := newSpatiServiceForTest(t)
	ctx := context.Background()

	upload := &service.ImageUpload{Data: []byte("png"), Filename: "front.png", ContentType: "image/png"}
	uploadedURL := "https://storage.googleapis.com/spaetimap/spatis/abc.png"
	amenityIDs := []string{uuid.NewString(), uuid.NewString()}

	mockImages.EXPECT().Upload(ctx, "spatis", upload).Return(uploadedURL, nil)

	var createdID string
	mockSpatiRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Spati")).
		RunAndReturn(func(_ context.Context, spati *entity.Spati) error {
			createdID = spati.ID
			assert.Equal(t, uploadedURL, *spati.ImageURL)

			return nil
		})
	mockSpatiRepo.EXPECT().
		ReplaceAmenities(ctx, mock.AnythingOfType("string"), amenityIDs).
		Return(nil)
	mockSpatiRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, id string) (*entity.Spati, error) {
			assert.Equal(t, createdID, id)

			return &entity.Spati{ID: id, Name: "Neukölln Nights", Amenities: []*entity.Amenity{}}, nil
		})

	expectTransaction(t, mockTx, mockSpatiRepo)

	spati, err := svc.Create(ctx, &usecase.SpatiInput{
		Name:        "Neukölln Nights",
		Description: "Open late",
		Latitude:    52.48,
		Longitude:   13.43,
		Address:     "Sonnenallee 1",
		Hours:       "18:00-06:00",
		Type:        "kiosk",
		AmenityIDs:  amenityIDs,
		Image:       usecase.ImageDirective{Op: usecase.ImageReplaceFile, File: upload},
	})
	require.NoError(t, err)
	assert.Equal(t, createdID, spati.ID)
}

func TestSpatiService_Update_ReplaceFileDeletesOldBlobOnce(t *testing.T) {
	svc, mockTx, mockSpatiRepo, mockImages := newSpatiServiceForTest(t)
	ctx := context.Background()

	id := uuid.NewString()
	oldURL := "https://storage.googleapis.com/spaetimap/spatis/old.png"
	newURL := "https://storage.googleapis.com/spaetimap/spatis/new.png"
	upload := &service.ImageUpload{Data: []byte("jpg"), Filename: "new.jpg", ContentType: "image/jpeg"}

	mockSpatiRepo.EXPECT().FindByID(ctx, id).
		Return(&entity.Spati{ID: id, Name: "Old Name", ImageURL: &oldURL}, nil).Once()

	mockImages.EXPECT().Delete(ctx, oldURL).Return(nil).Once()
	mockImages.EXPECT().Upload(ctx, "spatis", upload).Return(newURL, nil).Once()

	mockSpatiRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Spati")).
		RunAndReturn(func(_ context.Context, spati *entity.Spati) error {
			assert.Equal(t, newURL, *spati.ImageURL)

			return nil
		})
	mockSpatiRepo.EXPECT().ReplaceAmenities(ctx, id, []string{}).Return(nil)
	mockSpatiRepo.EXPECT().FindByID(ctx, id).
		Return(&entity.Spati{ID: id, Name: "New Name", ImageURL: &newURL, Amenities: []*entity.Amenity{}}, nil).Once()

	expectTransaction(t, mockTx, mockSpatiRepo)

	spati, err := svc.Update(ctx, id, &usecase.SpatiInput{
		Name:        "New Name",
		Description: "Still open late",
		Address:     "Sonnenallee 1",
		Hours:       "18:00-06:00",
		Type:        "kiosk",
		AmenityIDs:  []string{},
		Image:       usecase.ImageDirective{Op: usecase.ImageReplaceFile, File: upload},
	})
	require.NoError(t, err)
	assert.Equal(t, newURL, *spati.ImageURL)
}

func TestSpatiService_Update_KeepImageTouchesNoBlobs(t *testing.T) {
	svc, mockTx, mockSpatiRepo, _ := newSpatiServiceForTest(t)
	ctx := context.Background()

	id := uuid.NewString()
	currentURL := "https://storage.googleapis.com/spaetimap/spatis/keep.png"

	mockSpatiRepo.EXPECT().FindByID(ctx, id).
		Return(&entity.Spati{ID: id, ImageURL: &currentURL}, nil).Once()
	mockSpatiRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Spati")).
		RunAndReturn(func(_ context.Context, spati *entity.Spati) error {
			assert.Equal(t, currentURL, *spati.ImageURL)

			return nil
		})
	mockSpatiRepo.EXPECT().ReplaceAmenities(ctx, id, []string{}).Return(nil)
	mockSpatiRepo.EXPECT().FindByID(ctx, id).
		Return(&entity.Spati{ID: id, ImageURL: &currentURL, Amenities: []*entity.Amenity{}}, nil).Once()

	expectTransaction(t, mockTx, mockSpatiRepo)

	_, err := svc.Update(ctx, id, &usecase.SpatiInput{
		Name:        "Name",
		Description: "Desc",
		Address:     "Addr",
		Hours:       "24/7",
		Type:        "kiosk",
		AmenityIDs:  []string{},
		Image:       usecase.ImageDirective{Op: usecase.ImageKeep},
	})
	require.NoError(t, err)
}

func TestSpatiService_Delete_RemovesBlobThenRow(t *testing.T) {
	svc, mockTx, mockSpatiRepo, mockImages := newSpatiServiceForTest(t)
	ctx := context.Background()

	id := uuid.NewString()
	imageURL := "https://storage.googleapis.com/spaetimap/spatis/gone.png"

	mockSpatiRepo.EXPECT().FindByID(ctx, id).
		Return(&entity.Spati{ID: id, ImageURL: &imageURL}, nil)
	mockImages.EXPECT().Delete(ctx, imageURL).Return(nil)
	mockSpatiRepo.EXPECT().Delete(ctx, id).Return(nil)

	expectTransaction(t, mockTx, mockSpatiRepo)

	require.NoError(t, svc.Delete(ctx, id))
}

func TestSpatiService_Delete_BlobFailureAbortsBeforeDatabase(t *testing.T) {
	svc, _, mockSpatiRepo, mockImages := newSpatiServiceForTest(t)
	ctx := context.Background()

	id := uuid.NewString()
	imageURL := "https://storage.googleapis.com/spaetimap/spatis/stuck.png"

	mockSpatiRepo.EXPECT().FindByID(ctx, id).
		Return(&entity.Spati{ID: id, ImageURL: &imageURL}, nil)
	mockImages.EXPECT().Delete(ctx, imageURL).Return(errors.New("bucket unreachable"))

	// No transaction expectation: the row must stay untouched.
	err := svc.Delete(ctx, id)
	assert.Error(t, err)
}
