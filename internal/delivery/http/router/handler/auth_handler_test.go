package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spaetimap/internal/delivery/http/validator"
	domainerrors "spaetimap/internal/domain/errors"
	mockUC "spaetimap/internal/mocks/usecase"
	"spaetimap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loginContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newAuthHandlerForTest(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(mockAuth, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return h, mockAuth
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, mockAuth := newAuthHandlerForTest(t)

	mockAuth.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "admin@example.com", Password: "correct horse"}).
		Return(&usecase.LoginOutput{Token: "signed.jwt"}, nil)

	c, rec := loginContext(t, `{"email": "admin@example.com", "password": "correct horse"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token": "signed.jwt"}`, rec.Body.String())
}

func TestAuthHandler_Login_ShortPasswordReachesUsecase(t *testing.T) {
	h, mockAuth := newAuthHandlerForTest(t)

	// A short password is not a validation failure. It flows to the
	// credential check and fails with the same 401 as any wrong password.
	mockAuth.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "admin@example.com", Password: "short"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := loginContext(t, `{"email": "admin@example.com", "password": "short"}`)
	err := h.Login(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAuthHandler_Login_MissingPasswordFailsValidation(t *testing.T) {
	h, _ := newAuthHandlerForTest(t)

	c, _ := loginContext(t, `{"email": "admin@example.com"}`)
	err := h.Login(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
