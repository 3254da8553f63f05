// Package model holds the GORM persistence models mirroring the database
// schema. Ids are opaque text, generated at the service layer.
package model

// SpatiModel mirrors the 'spati_locations' table.
type SpatiModel struct {
	ID           string  `gorm:"type:text;primaryKey"`
	StoreName    string  `gorm:"column:store_name;type:text;not null"`
	Description  string  `gorm:"type:text;not null"`
	Lat          float64 `gorm:"type:double precision;not null"`
	Lng          float64 `gorm:"type:double precision;not null"`
	Address      string  `gorm:"type:text;not null"`
	OpeningHours string  `gorm:"column:opening_hours;type:text;not null"`
	StoreType    string  `gorm:"column:store_type;type:text;not null"`
	Rating       float64 `gorm:"type:double precision;not null"`
	ImageURL     *string `gorm:"column:image_url;type:text"`
	MoodID       *string `gorm:"column:mood_id;type:text"`

	Mood *MoodModel `gorm:"foreignKey:MoodID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (SpatiModel) TableName() string {
	return "spati_locations"
}

// SpatiAmenityModel mirrors the 'spati_amenities' junction table. Rows have
// no independent lifecycle; every spati update fully replaces them.
type SpatiAmenityModel struct {
	SpatiID   string `gorm:"column:spati_id;type:text;primaryKey"`
	AmenityID string `gorm:"column:amenity_id;type:text;primaryKey"`

	Spati   *SpatiModel   `gorm:"foreignKey:SpatiID;constraint:OnDelete:CASCADE"`
	Amenity *AmenityModel `gorm:"foreignKey:AmenityID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SpatiAmenityModel) TableName() string {
	return "spati_amenities"
}
