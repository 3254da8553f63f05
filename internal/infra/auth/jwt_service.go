// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"spaetimap/config"
	"spaetimap/internal/domain/entity"
	"spaetimap/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.Auth.JWTSecret,
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Generate creates a signed, time-bounded bearer token carrying the admin identity.
func (s *jwtService) Generate(admin *entity.Admin) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   admin.ID,
		"email": admin.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks the token signature and expiry and extracts the admin identity.
func (s *jwtService) Validate(tokenString string) (*service.AdminClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}

	adminID, ok := claims["sub"].(string)
	if !ok || adminID == "" {
		return nil, errors.New("admin id missing from token")
	}
	email, _ := claims["email"].(string)

	return &service.AdminClaims{AdminID: adminID, Email: email}, nil
}
