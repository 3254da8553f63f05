package request

import (
	domainerrors "spaetimap/internal/domain/errors"
	"spaetimap/internal/usecase"

	"github.com/labstack/echo/v4"
)

// amenityBody is the JSON shape of an admin amenity write.
type amenityBody struct {
	Name        string         `json:"name"`
	ImageURL    OptionalString `json:"imageUrl"`
	RemoveImage bool           `json:"removeImage"`
}

// BindAmenity parses an amenity write request, JSON or multipart.
func BindAmenity(c echo.Context) (*usecase.AmenityInput, error) {
	if isMultipart(c) {
		image, err := formImage(c)
		if err != nil {
			return nil, err
		}

		return &usecase.AmenityInput{
			Name: c.FormValue("name"),
			Image: directiveFromForm(image,
				truthy(c.FormValue("removeImage")), c.FormValue("imageUrl")),
		}, nil
	}

	var body amenityBody
	if err := c.Bind(&body); err != nil {
		return nil, domainerrors.NewValidationError("Invalid request body")
	}

	return &usecase.AmenityInput{
		Name:  body.Name,
		Image: directiveFromJSON(body.ImageURL, body.RemoveImage),
	}, nil
}
