package impl

import (
	"context"

	"spaetimap/internal/domain/service"
	"spaetimap/internal/usecase"
)

// Blob key namespaces per entity type.
const (
	spatiImageFolder   = "spatis"
	amenityImageFolder = "amenities"
	moodImageFolder    = "moods"
)

// resolveImage applies a write request's image directive against the
// current URL and returns the URL to persist. Precedence: file upload,
// then removal, then external URL reuse, then keep. A request carrying
// both a file and a remove flag was already collapsed to ImageReplaceFile
// by the request layer, so the old blob is deleted exactly once.
//
// Any blob delete failure other than "object already absent" (which the
// store swallows) aborts the write before the database is touched. Blob
// operations are never part of a database transaction: image and row
// changes are not jointly atomic, and a crash between them can orphan a
// blob. That is accepted; a failed row write is still reported as an error.
func resolveImage(
	ctx context.Context,
	images service.ImageStorage,
	folder string,
	current *string,
	directive usecase.ImageDirective,
) (*string, error) {
	switch directive.Op {
	case usecase.ImageReplaceFile:
		if current != nil {
			if err := images.Delete(ctx, *current); err != nil {
				return nil, err
			}
		}

		url, err := images.Upload(ctx, folder, directive.File)
		if err != nil {
			return nil, err
		}

		return &url, nil

	case usecase.ImageRemove:
		if current != nil {
			if err := images.Delete(ctx, *current); err != nil {
				return nil, err
			}
		}

		return nil, nil

	case usecase.ImageSetURL:
		url := directive.URL

		return &url, nil

	default:
		return current, nil
	}
}
