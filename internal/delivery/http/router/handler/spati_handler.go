// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"spaetimap/internal/delivery/http/request"
	"spaetimap/internal/delivery/http/response"
	domainerrors "spaetimap/internal/domain/errors"
	"spaetimap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SpatiHandler holds dependencies for spati-related handlers.
type SpatiHandler struct {
	uc     usecase.SpatiUsecase
	logger *slog.Logger
}

// NewSpatiHandler is the constructor for SpatiHandler, injected by Fx.
func NewSpatiHandler(uc usecase.SpatiUsecase, logger *slog.Logger) *SpatiHandler {
	return &SpatiHandler{uc: uc, logger: logger}
}

// List returns every spati, optionally narrowed by lat/lng/radius query
// params.
func (h *SpatiHandler) List(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return err
	}

	spatis, err := h.uc.List(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, spatis)
}

// Get returns one spati by id.
func (h *SpatiHandler) Get(c echo.Context) error {
	spati, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, spati)
}

// Create handles an admin spati creation, JSON or multipart.
func (h *SpatiHandler) Create(c echo.Context) error {
	input, err := request.BindSpati(c)
	if err != nil {
		return err
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	spati, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, spati)
}

// Update handles a full admin spati replace.
func (h *SpatiHandler) Update(c echo.Context) error {
	input, err := request.BindSpati(c)
	if err != nil {
		return err
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	spati, err := h.uc.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, spati)
}

// Delete handles an admin spati deletion.
func (h *SpatiHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// listQuery parses the optional proximity filter. Absent radius means no
// filtering; a present radius requires lat and lng.
func listQuery(c echo.Context) (*usecase.SpatiListQuery, error) {
	radiusRaw := c.QueryParam("radius")
	if radiusRaw == "" {
		return nil, nil
	}

	radius, err := strconv.ParseFloat(radiusRaw, 64)
	if err != nil || radius <= 0 {
		return nil, domainerrors.NewValidationError(`Query param "radius" must be a positive number`)
	}

	latitude, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return nil, domainerrors.NewValidationError(`Query param "lat" must be a number`)
	}

	longitude, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return nil, domainerrors.NewValidationError(`Query param "lng" must be a number`)
	}

	return &usecase.SpatiListQuery{
		Latitude:  latitude,
		Longitude: longitude,
		Radius:    radius,
	}, nil
}
