package request

import (
	domainerrors "spaetimap/internal/domain/errors"
	"spaetimap/internal/usecase"

	"github.com/labstack/echo/v4"
)

// moodBody is the JSON shape of an admin mood write.
type moodBody struct {
	Name        string         `json:"name"`
	Color       string         `json:"color"`
	ImageURL    OptionalString `json:"imageUrl"`
	RemoveImage bool           `json:"removeImage"`
}

// BindMood parses a mood write request, JSON or multipart.
func BindMood(c echo.Context) (*usecase.MoodInput, error) {
	if isMultipart(c) {
		image, err := formImage(c)
		if err != nil {
			return nil, err
		}

		return &usecase.MoodInput{
			Name:  c.FormValue("name"),
			Color: c.FormValue("color"),
			Image: directiveFromForm(image,
				truthy(c.FormValue("removeImage")), c.FormValue("imageUrl")),
		}, nil
	}

	var body moodBody
	if err := c.Bind(&body); err != nil {
		return nil, domainerrors.NewValidationError("Invalid request body")
	}

	return &usecase.MoodInput{
		Name:  body.Name,
		Color: body.Color,
		Image: directiveFromJSON(body.ImageURL, body.RemoveImage),
	}, nil
}
