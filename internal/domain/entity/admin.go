package entity

import "time"

// Admin is a dashboard operator. Admins are created only through the
// seedadmin CLI, never via a public endpoint. Email is stored lower-cased.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
