// Package storage implements the image blob store on top of gocloud.dev,
// backed by a GCS bucket in production.
package storage

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"spaetimap/config"
	"spaetimap/internal/domain/service"
	"spaetimap/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/gcsblob" // register the gs:// bucket scheme
	"gocloud.dev/gcerrors"
)

// Uploaded objects are immutable; a replaced image gets a fresh key.
const imageCacheControl = "public, max-age=31536000, immutable"

// imageStorage implements service.ImageStorage over a blob bucket.
type imageStorage struct {
	bucket  *blob.Bucket
	baseURL string
	logger  *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured GCS bucket and manages its lifecycle through fx.
func New(params Params) (service.ImageStorage, error) {
	if params.Config.Storage.Bucket == "" {
		return nil, errors.New("storage bucket must be configured")
	}

	bucket, err := blob.OpenBucket(context.Background(), "gs://"+params.Config.Storage.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewWithBucket(bucket, params.Config.Storage.Bucket, params.Logger), nil
}

// NewWithBucket wires an already-open bucket; tests use it with memblob.
func NewWithBucket(bucket *blob.Bucket, bucketName string, logger *slog.Logger) service.ImageStorage {
	return &imageStorage{
		bucket:  bucket,
		baseURL: "https://storage.googleapis.com/" + bucketName + "/",
		logger:  logger,
	}
}

// Upload stores the image under a fresh namespaced key and returns its
// public URL. The key embeds only a uuid and the sanitized file extension,
// never the original filename.
func (s *imageStorage) Upload(ctx context.Context, folder string, image *service.ImageUpload) (string, error) {
	key := folder + "/" + uuid.NewString() + extensionOf(image.Filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  image.ContentType,
		CacheControl: imageCacheControl,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := writer.Write(image.Data); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write image blob")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish image blob write")
	}

	return s.baseURL + key, nil
}

// Delete removes the blob behind a URL this store produced. Foreign URLs
// are skipped and an already-absent object counts as success.
func (s *imageStorage) Delete(ctx context.Context, imageURL string) error {
	key, ok := s.keyFromURL(imageURL)
	if !ok {
		if s.logger != nil {
			s.logger.Debug("Skipping delete of foreign image URL", slog.String("url", imageURL))
		}

		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete image blob")
	}

	return nil
}

// keyFromURL derives the blob key back out of a public URL. Only URLs with
// this bucket's prefix round-trip.
func (s *imageStorage) keyFromURL(imageURL string) (string, bool) {
	if !strings.HasPrefix(imageURL, s.baseURL) {
		return "", false
	}

	key := strings.TrimPrefix(imageURL, s.baseURL)
	if key == "" {
		return "", false
	}

	return key, true
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.]+`)

// extensionOf extracts a lower-cased extension from an upload filename,
// returning "" when there is none worth keeping.
func extensionOf(filename string) string {
	cleaned := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(filename), "-")

	idx := strings.LastIndex(cleaned, ".")
	if idx <= 0 {
		return ""
	}

	return strings.ToLower(cleaned[idx:])
}
