package model

// AmenityModel mirrors the 'amenities' table.
type AmenityModel struct {
	ID       string  `gorm:"type:text;primaryKey"`
	Name     string  `gorm:"type:text;not null"`
	ImageURL *string `gorm:"column:image_url;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (AmenityModel) TableName() string {
	return "amenities"
}
