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

// MoodHandler holds dependencies for mood-related handlers.
type MoodHandler struct {
	uc     usecase.MoodUsecase
	logger *slog.Logger
}

// NewMoodHandler is the constructor for MoodHandler, injected by Fx.
func NewMoodHandler(uc usecase.MoodUsecase, logger *slog.Logger) *MoodHandler {
	return &MoodHandler{uc: uc, logger: logger}
}

// List returns every mood.
func (h *MoodHandler) List(c echo.Context) error {
	moods, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, moods)
}

// Create handles an admin mood creation, JSON or multipart.
func (h *MoodHandler) Create(c echo.Context) error {
	input, err := request.BindMood(c)
	if err != nil {
		return err
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	mood, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, mood)
}

// Update handles a full admin mood replace.
func (h *MoodHandler) Update(c echo.Context) error {
	input, err := request.BindMood(c)
	if err != nil {
		return err
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	mood, err := h.uc.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, mood)
}

// Delete handles an admin mood deletion.
func (h *MoodHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
