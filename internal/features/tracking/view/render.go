package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/tracking.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/tracking.html"))

// Render writes the tracking page as HTML.
func Render(w io.Writer, v *TrackingView) error {
	if err := pageTemplate.ExecuteTemplate(w, "tracking.html", v); err != nil {
		return fmt.Errorf("failed to render tracking page: %w", err)
	}
	return nil
}
