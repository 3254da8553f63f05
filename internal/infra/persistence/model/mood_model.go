package model

// MoodModel mirrors the 'moods' table.
type MoodModel struct {
	ID       string  `gorm:"type:text;primaryKey"`
	Name     string  `gorm:"type:text;not null"`
	Color    string  `gorm:"type:text;not null"`
	ImageURL *string `gorm:"column:image_url;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (MoodModel) TableName() string {
	return "moods"
}
