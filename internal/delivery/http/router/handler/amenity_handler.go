package handler

import (
	"log/slog"
	"net/http"

	"spaetimap/internal/delivery/http/request"
	"spaetimap/internal/delivery/http/response"
	"spaetimap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AmenityHandler holds dependencies for amenity-related handlers.
type AmenityHandler struct {
	uc     usecase.AmenityUsecase
	logger *slog.Logger
}

// NewAmenityHandler is the constructor for AmenityHandler, injected by Fx.
func NewAmenityHandler(uc usecase.AmenityUsecase, logger *slog.Logger) *AmenityHandler {
	return &AmenityHandler{uc: uc, logger: logger}
}

// List returns every amenity.
func (h *AmenityHandler) List(c echo.Context) error {
	amenities, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, amenities)
}

// Create handles an admin amenity creation, JSON or multipart.
func (h *AmenityHandler) Create(c echo.Context) error {
	input, err := request.BindAmenity(c)
	if err != nil {
		return err
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	amenity, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, amenity)
}

// Update handles a full admin amenity replace.
func (h *AmenityHandler) Update(c echo.Context) error {
	input, err := request.BindAmenity(c)
	if err != nil {
		return err
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	amenity, err := h.uc.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, amenity)
}

// Delete handles an admin amenity deletion.
func (h *AmenityHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
