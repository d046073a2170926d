package handlers

import (
	"html/template"
	"net/http"

	"wayfare/services/catalog"
)

// PagesHandler renders the authenticated catalog views.
type PagesHandler struct {
	gate      *Gate
	templates *template.Template
}

// NewPagesHandler creates the pages handler.
func NewPagesHandler(gate *Gate, templates *template.Template) *PagesHandler {
	return &PagesHandler{gate: gate, templates: templates}
}

// HomePageData holds data for the home template
type HomePageData struct {
	Username   string
	Categories []string
}

// CategoryPageData holds data for the category template
type CategoryPageData struct {
	Title        string
	Destinations []string
}

// DestinationPageData holds data for the destination template
type DestinationPageData struct {
	Name string
}

// Home renders the landing page for a signed-in user (GET /home)
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	username, _ := h.gate.Username(r)
	renderTemplate(w, h.templates, "home.html", HomePageData{
		Username:   username,
		Categories: []string{"hiking", "islands", "cities"},
	})
}

// Category returns a handler rendering the named category page.
func (h *PagesHandler) Category(name string) http.HandlerFunc {
	var names []string
	for _, d := range catalog.Category(name) {
		names = append(names, d.Name)
	}
	data := CategoryPageData{Title: name, Destinations: names}
	return func(w http.ResponseWriter, r *http.Request) {
		renderTemplate(w, h.templates, "category.html", data)
	}
}

// Destination returns a handler rendering the named destination page.
func (h *PagesHandler) Destination(name string) http.HandlerFunc {
	data := DestinationPageData{Name: name}
	return func(w http.ResponseWriter, r *http.Request) {
		renderTemplate(w, h.templates, "destination.html", data)
	}
}
