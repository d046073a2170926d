package catalog_test

import (
	"testing"

	"wayfare/models"
	"wayfare/services/catalog"
)

func names(destinations []models.Destination) []string {
	var out []string
	for _, d := range destinations {
		out = append(out, d.Name)
	}
	return out
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case-insensitive substring", "an", []string{"Annapurna"}},
		{"uppercase query", "AN", []string{"Annapurna"}},
		{"multiple matches", "i", []string{"Inca", "Santorini", "Bali", "Paris"}},
		{"exact name", "Bali", []string{"Bali"}},
		{"no matches", "xyz", nil},
		{"empty query", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(catalog.Search(tt.query))
			if len(got) != len(tt.want) {
				t.Fatalf("search(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("search(%q) = %v, want %v", tt.query, got, tt.want)
				}
			}
		})
	}
}

func TestSearchPreservesCatalogOrder(t *testing.T) {
	got := names(catalog.Search("a"))
	want := []string{"Inca", "Santorini", "Annapurna", "Bali", "Paris"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCategory(t *testing.T) {
	hiking := names(catalog.Category(models.CategoryHiking))
	if len(hiking) != 2 || hiking[0] != "Inca" || hiking[1] != "Annapurna" {
		t.Fatalf("unexpected hiking destinations: %v", hiking)
	}

	if got := catalog.Category("volcanoes"); got != nil {
		t.Fatalf("expected no destinations for unknown category, got %v", got)
	}
}

func TestDestinationsIsACopy(t *testing.T) {
	all := catalog.Destinations()
	if len(all) != 6 {
		t.Fatalf("expected 6 destinations, got %d", len(all))
	}
	all[0].Name = "mutated"
	if catalog.Destinations()[0].Name != "Rome" {
		t.Fatalf("catalog was mutated through the returned slice")
	}
}
