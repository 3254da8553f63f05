package usecase

import "spaetimap/internal/domain/service"

// ImageOp is what a write request asks to happen to an entity's image.
// "Field omitted" and "field explicitly null" are different operations and
// must stay distinguishable; the request layer resolves a file upload
// combined with a remove flag into a single replace.
type ImageOp int

const (
	// ImageKeep leaves the existing image URL unchanged (field omitted).
	ImageKeep ImageOp = iota
	// ImageRemove deletes the existing blob, if any, and nulls the URL.
	ImageRemove
	// ImageSetURL reuses an externally-hosted URL without any blob ops.
	ImageSetURL
	// ImageReplaceFile deletes the existing blob, if any, then uploads the
	// new file and uses its URL.
	ImageReplaceFile
)

// ImageDirective is the normalized image instruction carried by every
// create/update input. Business logic never inspects transport framing.
type ImageDirective struct {
	Op   ImageOp
	URL  string               // set for ImageSetURL
	File *service.ImageUpload // set for ImageReplaceFile
}
