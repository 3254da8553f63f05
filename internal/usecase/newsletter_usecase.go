package usecase

import "context"

// SubscribeInput carries the email to add to the newsletter list.
type SubscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

// NewsletterUsecase handles idempotent newsletter signups.
type NewsletterUsecase interface {
	Subscribe(ctx context.Context, input *SubscribeInput) error
}
