package entity

// Spati is a late-night convenience store on the map, together with its
// attached amenities and optional mood. Amenities is always non-nil on
// records read from the repository; a spati without tags carries an empty
// slice, never null.
type Spati struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Address     string     `json:"address"`
	Hours       string     `json:"hours"`
	Type        string     `json:"type"`
	Rating      float64    `json:"rating"`
	ImageURL    *string    `json:"imageUrl"`
	MoodID      *string    `json:"-"`
	Mood        *Mood      `json:"mood"`
	Amenities   []*Amenity `json:"amenities"`
}
