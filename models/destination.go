package models

// Destination is one entry of the fixed travel catalog.
type Destination struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Catalog categories. Every destination belongs to exactly one.
const (
	CategoryHiking  = "hiking"
	CategoryIslands = "islands"
	CategoryCities  = "cities"
)
