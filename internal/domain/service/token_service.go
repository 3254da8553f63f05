package service

import "spaetimap/internal/domain/entity"

// AdminClaims is the identity carried by a validated admin bearer token.
type AdminClaims struct {
	AdminID string
	Email   string
}

// TokenService issues and validates the signed, time-bounded bearer tokens
// used on admin-only routes.
type TokenService interface {
	Generate(admin *entity.Admin) (string, error)
	// Validate parses and verifies a token string. Any failure (bad
	// signature, malformed, expired) returns an error; callers surface it
	// uniformly as Unauthorized.
	Validate(tokenString string) (*AdminClaims, error)
}
