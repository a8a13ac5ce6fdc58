// Package sections renders the source files of the generated site: one
// component per page section, the page that composes them and the root layout.
//
// Templates are embedded and carry only structure. Every value that comes from
// the configuration reaches the output through the lit and expr template
// functions, which emit JSON literals, so content can never change the shape of
// the generated source and always decodes back to the configured value.
package sections

import (
	"bytes"
	"embed"
	"fmt"
	"log/slog"
	"text/template"

	"git.home.luguber.info/inful/pagesmith/internal/assets"
	"git.home.luguber.info/inful/pagesmith/internal/config"
	"git.home.luguber.info/inful/pagesmith/internal/logfields"
	"git.home.luguber.info/inful/pagesmith/internal/project"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("sections").
		Option("missingkey=error").
		Funcs(template.FuncMap{
			"lit":  Literal,
			"expr": Expression,
		}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// Paths of the generated files relative to the project root.
const (
	ComponentsDir = "components"
	PagePath      = "app/page.tsx"
	LayoutPath    = "app/layout.tsx"
)

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderLayout renders the root layout: dark theme by default, system theme
// detection disabled, Inter as the page font. It takes no configuration.
func RenderLayout() (string, error) {
	return execute("layout.tsx.tmpl", nil)
}

type pageData struct {
	Meta     config.MetaData
	Sections []Section
}

// RenderPage renders the page that imports and composes every section in
// canonical order and exports the configured metadata.
func RenderPage(meta config.MetaData) (string, error) {
	return execute("page.tsx.tmpl", pageData{Meta: meta, Sections: Order()})
}

// Generate renders the layout, every section in canonical order and the page.
// It stops at the first section that fails, typically with a
// *config.MissingFieldError.
func Generate(cfg *config.Config, manifest assets.Manifest) ([]project.Artifact, error) {
	artifacts := make([]project.Artifact, 0, len(registry)+2)

	layout, err := RenderLayout()
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, project.Artifact{RelativePath: LayoutPath, Content: layout})

	for _, s := range registry {
		src, err := s.render(cfg, manifest)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", s.Kind, err)
		}
		slog.Debug("Section rendered", logfields.Section(s.Key), logfields.File(s.Path()))
		artifacts = append(artifacts, project.Artifact{RelativePath: s.Path(), Content: src})
	}

	page, err := RenderPage(cfg.MetaData)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, project.Artifact{RelativePath: PagePath, Content: page})
	return artifacts, nil
}
