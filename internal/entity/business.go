package entity

// Business represents one listing in the local business catalog.
//
// The catalog is loaded fresh for every request; a Business value is never
// mutated after the snapshot is built. JSON tags match the payload shape the
// frontend consumes, including the optional display fields.
type Business struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Hours       string   `json:"hours,omitempty"`
	Image       string   `json:"image,omitempty"`
	PriceRange  string   `json:"price_range,omitempty"`
	Latitude    *float64 `json:"lat,omitempty"`
	Longitude   *float64 `json:"lng,omitempty"`
}
