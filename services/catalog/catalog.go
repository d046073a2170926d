// Package catalog holds the fixed travel catalog and its search logic.
package catalog

import (
	"strings"

	"wayfare/models"
)

// destinations is the full catalog in its canonical order. Search results
// preserve this order.
var destinations = []models.Destination{
	{Name: "Rome", Category: models.CategoryCities},
	{Name: "Inca", Category: models.CategoryHiking},
	{Name: "Santorini", Category: models.CategoryIslands},
	{Name: "Annapurna", Category: models.CategoryHiking},
	{Name: "Bali", Category: models.CategoryIslands},
	{Name: "Paris", Category: models.CategoryCities},
}

// Destinations returns the whole catalog.
func Destinations() []models.Destination {
	out := make([]models.Destination, len(destinations))
	copy(out, destinations)
	return out
}

// Category returns the destinations belonging to the named category, in
// catalog order.
func Category(name string) []models.Destination {
	var out []models.Destination
	for _, d := range destinations {
		if d.Category == name {
			out = append(out, d)
		}
	}
	return out
}

// Search returns every destination whose name contains the query,
// case-insensitively, in catalog order. An empty query matches nothing.
func Search(query string) []models.Destination {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []models.Destination
	for _, d := range destinations {
		if strings.Contains(strings.ToLower(d.Name), q) {
			out = append(out, d)
		}
	}
	return out
}
