// Package request parses JSON and multipart write requests into usecase
// inputs, normalizing the image field into a single directive.
package request

import "encoding/json"

// OptionalString distinguishes an absent JSON field from an explicit null.
// Both zero states decode differently: absent leaves Present false, null
// sets Present with a nil Value.
type OptionalString struct {
	Present bool
	Value   *string
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true

	if string(data) == "null" {
		o.Value = nil

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s

	return nil
}
