package request

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	domainerrors "spaetimap/internal/domain/errors"
	"spaetimap/internal/domain/service"
	"spaetimap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// allowedImageTypes is the upload MIME whitelist.
var allowedImageTypes = map[string]struct{}{
	"image/png":     {},
	"image/jpeg":    {},
	"image/webp":    {},
	"image/avif":    {},
	"image/svg+xml": {},
}

// truthy reports whether a form flag value means "yes".
func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

// isMultipart reports whether the request body is a multipart form.
func isMultipart(c echo.Context) bool {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	return strings.HasPrefix(contentType, echo.MIMEMultipartForm)
}

// formImage reads the "image" file part, if any, fully into memory. The
// body size cap is enforced upstream by the body limit middleware.
func formImage(c echo.Context) (*service.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, domainerrors.NewValidationError("Invalid image upload")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		return nil, domainerrors.NewValidationError(
			fmt.Sprintf("Unsupported image type %q", contentType))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded image")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded image")
	}

	return &service.ImageUpload{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
	}, nil
}

// directiveFromJSON maps the JSON image fields onto one directive.
// Explicit null and a true removeImage flag both mean removal; a non-null
// URL is reused as-is; an absent field keeps the current image.
func directiveFromJSON(imageURL OptionalString, removeImage bool) usecase.ImageDirective {
	switch {
	case removeImage:
		return usecase.ImageDirective{Op: usecase.ImageRemove}
	case imageURL.Present && imageURL.Value == nil:
		return usecase.ImageDirective{Op: usecase.ImageRemove}
	case imageURL.Present:
		return usecase.ImageDirective{Op: usecase.ImageSetURL, URL: *imageURL.Value}
	default:
		return usecase.ImageDirective{Op: usecase.ImageKeep}
	}
}

// directiveFromForm maps the multipart image fields onto one directive.
// A file upload wins over everything else, so a request carrying both a
// file and a remove flag collapses to a single replace. An empty imageUrl
// string is treated as absent.
func directiveFromForm(file *service.ImageUpload, removeImage bool, imageURL string) usecase.ImageDirective {
	switch {
	case file != nil:
		return usecase.ImageDirective{Op: usecase.ImageReplaceFile, File: file}
	case removeImage:
		return usecase.ImageDirective{Op: usecase.ImageRemove}
	case imageURL != "":
		return usecase.ImageDirective{Op: usecase.ImageSetURL, URL: imageURL}
	default:
		return usecase.ImageDirective{Op: usecase.ImageKeep}
	}
}
