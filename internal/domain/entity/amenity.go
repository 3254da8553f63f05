package entity

// Amenity is a filterable tag a spati can carry (e.g. "Sitzplätze",
// "Bottle opener"). Many-to-many with Spati through the junction table.
type Amenity struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
}
