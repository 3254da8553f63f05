// Package response holds the JSON shapes the API writes.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform error payload. Every non-2xx response carries
// exactly this shape.
type ErrorBody struct {
	Message string `json:"message"`
}

// JSON writes a success payload as-is, without an envelope.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes the uniform error body.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Message: message})
}
