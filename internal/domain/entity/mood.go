package entity

// Mood is a vibe category a spati can reference. Color is a hex string
// like "#6b46ff".
type Mood struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	ImageURL *string `json:"imageUrl"`
}
