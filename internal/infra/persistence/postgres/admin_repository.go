package postgres

import (
	"context"
	"strings"

	"spaetimap/internal/domain/entity"
	"spaetimap/internal/domain/repository"
	"spaetimap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// FindByEmail retrieves an admin by email. The comparison is lower-cased on
// both sides so lookups are case-insensitive.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminDomain(&adminM), nil
}

// Create persists a new admin with its email lower-cased.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)
	adminM.Email = strings.ToLower(adminM.Email)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAdmin
		}

		return errors.Wrap(err, "failed to create admin")
	}

	admin.Email = adminM.Email
	admin.CreatedAt = adminM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}
