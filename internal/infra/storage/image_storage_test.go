package storage

import (
	"context"
	"strings"
	"testing"

	"spaetimap/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) service.ImageStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	return NewWithBucket(bucket, "test-bucket", nil)
}

func TestImageStorage_UploadDeleteRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	url, err := store.Upload(ctx, "amenities", &service.ImageUpload{
		Data:        []byte("fake png bytes"),
		Filename:    "Beer Garden.PNG",
		ContentType: "image/png",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://storage.googleapis.com/test-bucket/amenities/"))
	assert.True(t, strings.HasSuffix(url, ".png"), "extension should be lower-cased: %s", url)

	// Deleting a URL we produced succeeds.
	require.NoError(t, store.Delete(ctx, url))

	// Deleting the same URL again is not an error.
	require.NoError(t, store.Delete(ctx, url))
}

func TestImageStorage_UploadWithoutExtension(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	url, err := store.Upload(ctx, "moods", &service.ImageUpload{
		Data:        []byte("bytes"),
		Filename:    "noextension",
		ContentType: "image/webp",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://storage.googleapis.com/test-bucket/moods/"))
	assert.False(t, strings.Contains(url, "noextension"), "original filename must not leak into the key")
}

func TestImageStorage_DeleteForeignURLIsNoop(t *testing.T) {
	store := newTestStorage(t)

	assert.NoError(t, store.Delete(context.Background(), "https://example.com/some/other/image.png"))
	assert.NoError(t, store.Delete(context.Background(), "https://storage.googleapis.com/another-bucket/x.png"))
}

func TestImageStorage_UniqueKeysPerUpload(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	image := &service.ImageUpload{Data: []byte("a"), Filename: "a.jpg", ContentType: "image/jpeg"}

	first, err := store.Upload(ctx, "spatis", image)
	require.NoError(t, err)
	second, err := store.Upload(ctx, "spatis", image)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"simple", "photo.png", ".png"},
		{"upper-cased", "PHOTO.JPG", ".jpg"},
		{"spaces and symbols", "my späti photo!.webp", ".webp"},
		{"no extension", "photo", ""},
		{"leading dot only", ".hidden", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extensionOf(tt.filename))
		})
	}
}
