package request

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	domainerrors "spaetimap/internal/domain/errors"
	"spaetimap/internal/usecase"

	"github.com/labstack/echo/v4"
)

// spatiBody is the JSON shape of an admin spati write.
type spatiBody struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Address     string         `json:"address"`
	Hours       string         `json:"hours"`
	Type        string         `json:"type"`
	Rating      float64        `json:"rating"`
	AmenityIDs  []string       `json:"amenityIds"`
	MoodID      *string        `json:"moodId"`
	ImageURL    OptionalString `json:"imageUrl"`
	RemoveImage bool           `json:"removeImage"`
}

// BindSpati parses a spati write request, JSON or multipart, into a
// usecase input. An omitted amenity list binds as empty, which clears the
// set on update.
func BindSpati(c echo.Context) (*usecase.SpatiInput, error) {
	if isMultipart(c) {
		return spatiFromForm(c)
	}

	return spatiFromJSON(c)
}

func spatiFromJSON(c echo.Context) (*usecase.SpatiInput, error) {
	var body spatiBody
	if err := c.Bind(&body); err != nil {
		return nil, domainerrors.NewValidationError("Invalid request body")
	}

	amenityIDs := body.AmenityIDs
	if amenityIDs == nil {
		amenityIDs = []string{}
	}

	return &usecase.SpatiInput{
		Name:        body.Name,
		Description: body.Description,
		Latitude:    body.Latitude,
		Longitude:   body.Longitude,
		Address:     body.Address,
		Hours:       body.Hours,
		Type:        body.Type,
		Rating:      body.Rating,
		AmenityIDs:  amenityIDs,
		MoodID:      body.MoodID,
		Image:       directiveFromJSON(body.ImageURL, body.RemoveImage),
	}, nil
}

func spatiFromForm(c echo.Context) (*usecase.SpatiInput, error) {
	latitude, err := formFloat(c, "latitude")
	if err != nil {
		return nil, err
	}
	longitude, err := formFloat(c, "longitude")
	if err != nil {
		return nil, err
	}
	rating, err := formFloat(c, "rating")
	if err != nil {
		return nil, err
	}

	amenityIDs, err := formAmenityIDs(c)
	if err != nil {
		return nil, err
	}

	image, err := formImage(c)
	if err != nil {
		return nil, err
	}

	var moodID *string
	if value := c.FormValue("moodId"); value != "" {
		moodID = &value
	}

	return &usecase.SpatiInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Latitude:    latitude,
		Longitude:   longitude,
		Address:     c.FormValue("address"),
		Hours:       c.FormValue("hours"),
		Type:        c.FormValue("type"),
		Rating:      rating,
		AmenityIDs:  amenityIDs,
		MoodID:      moodID,
		Image: directiveFromForm(image,
			truthy(c.FormValue("removeImage")), c.FormValue("imageUrl")),
	}, nil
}

func formFloat(c echo.Context, name string) (float64, error) {
	raw := c.FormValue(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domainerrors.NewValidationError(
			fmt.Sprintf("Field %q must be a number", name))
	}

	return value, nil
}

// formAmenityIDs reads the amenity id list from a multipart form. Clients
// send either repeated "amenityIds" fields or one field holding a JSON
// array.
func formAmenityIDs(c echo.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return []string{}, nil
	}

	values := form.Value["amenityIds"]
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var ids []string
		if err := json.Unmarshal([]byte(values[0]), &ids); err != nil {
			return nil, domainerrors.NewValidationError(
				`Field "amenityIds" must be a list of ids`)
		}

		return ids, nil
	}

	ids := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			ids = append(ids, value)
		}
	}

	return ids, nil
}
