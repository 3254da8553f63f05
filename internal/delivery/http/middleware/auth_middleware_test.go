package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "spaetimap/internal/domain/errors"
	"spaetimap/internal/domain/service"
	mockSvc "spaetimap/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/spatis", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockTokens := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(mockTokens)

	err := mw.Authenticate(okHandler)(authContext(""))
	assert.Equal(t, domainerrors.ErrUnauthorized, err)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	mockTokens := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(mockTokens)

	err := mw.Authenticate(okHandler)(authContext("Basic dXNlcjpwYXNz"))
	assert.Equal(t, domainerrors.ErrUnauthorized, err)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockTokens := mockSvc.NewMockTokenService(t)
	mockTokens.EXPECT().Validate("bad.token").Return(nil, errors.New("expired"))
	mw := NewAuthMiddleware(mockTokens)

	err := mw.Authenticate(okHandler)(authContext("Bearer bad.token"))
	assert.Equal(t, domainerrors.ErrUnauthorized, err)
}

func TestAuthMiddleware_ValidTokenSetsAdminOnContext(t *testing.T) {
	mockTokens := mockSvc.NewMockTokenService(t)
	mockTokens.EXPECT().Validate("good.token").Return(&service.AdminClaims{
		AdminID: "admin-1",
		Email:   "admin@example.com",
	}, nil)
	mw := NewAuthMiddleware(mockTokens)

	c := authContext("Bearer good.token")
	var sawAdminID, sawEmail any
	next := func(c echo.Context) error {
		sawAdminID = c.Get(ContextKeyAdminID)
		sawEmail = c.Get(ContextKeyAdminEmail)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, mw.Authenticate(next)(c))
	assert.Equal(t, "admin-1", sawAdminID)
	assert.Equal(t, "admin@example.com", sawEmail)
}
