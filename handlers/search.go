package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"wayfare/services/catalog"
)

// SearchHandler renders catalog search results.
type SearchHandler struct {
	templates *template.Template
}

// NewSearchHandler creates the search handler.
func NewSearchHandler(templates *template.Template) *SearchHandler {
	return &SearchHandler{templates: templates}
}

// SearchPageData holds data for the search results template
type SearchPageData struct {
	Destinations []string
	Error        string
}

// Search handles GET /search?q=<query>
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.render(w, nil, "Please enter a search term")
		return
	}
	h.renderResults(w, query)
}

// SearchForm handles POST /search with form field Search
func (h *SearchHandler) SearchForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, nil, "Please enter a search term")
		return
	}
	query := strings.TrimSpace(r.FormValue("Search"))
	if query == "" {
		h.render(w, nil, "Please enter a search term")
		return
	}
	h.renderResults(w, query)
}

func (h *SearchHandler) renderResults(w http.ResponseWriter, query string) {
	var names []string
	for _, d := range catalog.Search(query) {
		names = append(names, d.Name)
	}
	if len(names) == 0 {
		h.render(w, nil, "Destination not found")
		return
	}
	h.render(w, names, "")
}

func (h *SearchHandler) render(w http.ResponseWriter, destinations []string, errMsg string) {
	renderTemplate(w, h.templates, "searchresults.html", SearchPageData{
		Destinations: destinations,
		Error:        errMsg,
	})
}
