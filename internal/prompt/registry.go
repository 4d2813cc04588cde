package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Registry holds the system prompt templates, parsed once at startup.
// Profiles reference templates by name (without the .tmpl suffix).
type Registry struct {
	templates *template.Template
}

func NewRegistry() (*Registry, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse prompt templates: %w", err)
	}
	return &Registry{templates: tmpl}, nil
}

func (r *Registry) Render(ref string) (string, error) {
	t := r.templates.Lookup(ref + ".tmpl")
	if t == nil {
		return "", fmt.Errorf("prompt template '%s' not found", ref)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, nil); err != nil {
		return "", fmt.Errorf("render prompt template '%s': %w", ref, err)
	}
	return buf.String(), nil
}
