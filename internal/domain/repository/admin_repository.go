package repository

import (
	"context"

	"spaetimap/internal/domain/entity"
	"spaetimap/internal/errors"
)

// ErrAdminNotFound is returned when no admin matches the email.
var ErrAdminNotFound = errors.New("admin not found")

// ErrDuplicateAdmin is returned when the email is already registered.
var ErrDuplicateAdmin = errors.New("admin email already exists")

// AdminRepository provides lookup and seeding of admin accounts. Emails are
// compared and stored lower-cased.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	Create(ctx context.Context, admin *entity.Admin) error
}
