package handler

import (
	"log/slog"
	"net/http"

	"spaetimap/internal/delivery/http/response"
	domainerrors "spaetimap/internal/domain/errors"
	"spaetimap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewsletterHandler holds dependencies for newsletter handlers.
type NewsletterHandler struct {
	uc     usecase.NewsletterUsecase
	logger *slog.Logger
}

// NewNewsletterHandler is the constructor for NewsletterHandler, injected by Fx.
func NewNewsletterHandler(uc usecase.NewsletterUsecase, logger *slog.Logger) *NewsletterHandler {
	return &NewsletterHandler{uc: uc, logger: logger}
}

// Subscribe adds an email to the newsletter list. Re-subscribing an
// existing address returns the same 200.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var input usecase.SubscribeInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.NewValidationError("Invalid subscribe input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.Subscribe(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "Subscribed"})
}
