package usecase

import "context"

// LoginInput carries admin credentials. No length rule on the password:
// a too-short password must fail exactly like any other wrong password.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the bearer token used for admin-only APIs.
type LoginOutput struct {
	Token string `json:"token"`
}

// AuthUsecase verifies admin credentials and issues bearer tokens. Unknown
// email and wrong password fail identically.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
