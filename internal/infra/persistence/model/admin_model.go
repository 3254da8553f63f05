package model

import "time"

// AdminModel mirrors the 'admins' table. Email is unique and lower-cased.
type AdminModel struct {
	ID           string    `gorm:"type:text;primaryKey"`
	Email        string    `gorm:"type:text;not null;uniqueIndex:admins_email_idx"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
