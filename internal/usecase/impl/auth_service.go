package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "spaetimap/internal/domain/errors"
	"spaetimap/internal/domain/repository"
	"spaetimap/internal/domain/service"
	"spaetimap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	adminRepo repository.AdminRepository
	hasher    service.PasswordHasher
	tokens    service.TokenService
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AdminRepo repository.AdminRepository
	Hasher    service.PasswordHasher
	Tokens    service.TokenService
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		adminRepo: params.AdminRepo,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
		logger:    params.Logger,
	}
}

// Login verifies admin credentials and issues a bearer token. Unknown email
// and wrong password both come back as ErrInvalidCredentials so the response
// never reveals which part was wrong.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	admin, err := srv.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.logger.Error("Failed to look up admin", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up admin")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.Generate(admin)
	if err != nil {
		srv.logger.Error("Failed to issue admin token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.LoginOutput{Token: token}, nil
}
