package web

import (
	"embed"
	"html/template"
)

//go:embed templates
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS,
		"templates/*.html",
		"templates/users/*.html",
		"templates/posts/*.html",
		"templates/tags/*.html",
	)
}
