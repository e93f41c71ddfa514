package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"time"
)

// Templates manages HTML template rendering.
type Templates struct {
	templates map[string]*template.Template
	funcs     template.FuncMap
}

// NewTemplates creates a new template manager by loading templates from the given filesystem.
func NewTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{
		templates: make(map[string]*template.Template),
		funcs:     defaultFuncs(),
	}

	if err := t.load(templatesFS); err != nil {
		return nil, err
	}

	return t, nil
}

// Render renders a page template with the given data.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.templates[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}

	// Execute the "base" template which includes the page content
	return tmpl.ExecuteTemplate(w, "base", data)
}

// load parses all page templates together with layouts and partials.
func (t *Templates) load(templatesFS fs.FS) error {
	layouts, err := fs.Glob(templatesFS, "layouts/*.html")
	if err != nil {
		return fmt.Errorf("finding layouts: %w", err)
	}

	partials, err := fs.Glob(templatesFS, "partials/*.html")
	if err != nil {
		return fmt.Errorf("finding partials: %w", err)
	}

	pages, err := fs.Glob(templatesFS, "pages/*.html")
	if err != nil {
		return fmt.Errorf("finding pages: %w", err)
	}

	commonFiles := append(layouts, partials...)

	for _, page := range pages {
		name := filepath.Base(page)
		name = name[:len(name)-len(".html")]

		files := append([]string{page}, commonFiles...)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		t.templates[name] = tmpl
	}

	return nil
}

// defaultFuncs returns the default template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		// formatClock formats a time as "15:04:05" for the history list.
		"formatClock": func(t time.Time) string {
			return t.Format("15:04:05")
		},

		// formatScore formats a confidence score with two decimals.
		"formatScore": func(score float64) string {
			return fmt.Sprintf("%.2f", score)
		},
	}
}

// PageData contains common data passed to all page templates.
type PageData struct {
	Title string
	Flash *FlashMessage
}

// FlashMessage represents a temporary notification message.
type FlashMessage struct {
	Type    string // "success", "error", "warning"
	Message string
}

// HomePageData contains data for the home page template.
type HomePageData struct {
	PageData
	Result  *ResultData
	History []HistoryItem
}

// ResultData contains the presentation block for the current detection.
type ResultData struct {
	Category    string
	Color       string
	Emoji       string
	Message     string
	Tip         string
	Track       *TrackData
	MusicNotice string
}

// TrackData contains data for the embedded player section.
type TrackData struct {
	Name     string
	Artist   string
	EmbedURL string
}

// HistoryItem is one line of the recent-emotions list.
type HistoryItem struct {
	Time     time.Time
	Category string
	Score    float64
}
