package entity

import "time"

// NewsletterSubscriber is an email on the marketing list. Subscribing an
// already-subscribed email is a silent no-op.
type NewsletterSubscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
