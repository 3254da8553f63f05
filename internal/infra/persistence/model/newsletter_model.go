package model

import "time"

// NewsletterSubscriberModel mirrors the 'newsletter_subscribers' table.
type NewsletterSubscriberModel struct {
	ID        string    `gorm:"type:text;primaryKey"`
	Email     string    `gorm:"type:text;not null;unique"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName explicitly sets the table name for GORM.
func (NewsletterSubscriberModel) TableName() string {
	return "newsletter_subscribers"
}
