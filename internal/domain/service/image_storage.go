package service

import "context"

// ImageUpload is a fully-read upload normalized by the request layer.
type ImageUpload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ImageStorage is a key-addressed blob store for entity images. Upload
// returns a fully-qualified public URL; Delete derives the blob key back
// out of a URL this store produced. Deleting an already-absent object is
// success, and URLs not produced by this store are skipped.
type ImageStorage interface {
	// Upload stores the image under a fresh key namespaced by folder
	// (e.g. "amenities/<uuid>.png") and returns its public URL.
	Upload(ctx context.Context, folder string, image *ImageUpload) (string, error)
	// Delete removes the blob behind a URL previously returned by Upload.
	Delete(ctx context.Context, imageURL string) error
}
