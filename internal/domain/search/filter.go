package search

import (
	"rentacar/internal/domain/vehicle"
)

// Filter is the optional equality/range constraint set applied to the
// vehicle collection. A nil field means "no constraint".
type Filter struct {
	Fuel         *string  `json:"fuel,omitempty"`
	Doors        *int     `json:"doors,omitempty"`
	Make         *string  `json:"make,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Color        *string  `json:"color,omitempty"`
	Year         *int     `json:"year,omitempty"`
	Availability *bool    `json:"availability,omitempty"`
	MinPrice     *float64 `json:"minPrice,omitempty"`
	MaxPrice     *float64 `json:"maxPrice,omitempty"`
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Matches reports whether v satisfies every present constraint (AND
// semantics; the price range is inclusive on both ends).
func (f Filter) Matches(v vehicle.Vehicle) bool {
	if f.Fuel != nil && v.Fuel != *f.Fuel {
		return false
	}
	if f.Doors != nil && v.Doors != *f.Doors {
		return false
	}
	if f.Make != nil && v.Make != *f.Make {
		return false
	}
	if f.Model != nil && v.Name != *f.Model {
		return false
	}
	if f.Color != nil && v.Color != *f.Color {
		return false
	}
	if f.Year != nil && v.Year != *f.Year {
		return false
	}
	if f.Availability != nil && v.Availability != *f.Availability {
		return false
	}
	if f.MinPrice != nil && v.DailyRate < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && v.DailyRate > *f.MaxPrice {
		return false
	}
	return true
}

// Apply keeps the vehicles matching the filter, preserving order.
func (f Filter) Apply(vehicles []vehicle.Vehicle) []vehicle.Vehicle {
	if f.IsZero() {
		return vehicles
	}
	out := make([]vehicle.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if f.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}
