package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	domainerr "gazette/internal/domain/errors"
)

// Engine is the templating sink: it holds the theme's parsed templates and
// the shared markdown renderer, and emits one index.html per submitted
// context.
type Engine struct {
	tpl *template.Template
	md  *MarkdownRenderer
}

func NewEngine(themeDir, themeName string) (*Engine, error) {
	pattern := filepath.Join(themeDir, themeName, "templates", "*.tmpl")
	tpl, err := template.New("").Funcs(templateFuncs()).ParseGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("load theme %q: %w", themeName, err)
	}
	return &Engine{tpl: tpl, md: NewMarkdownRenderer()}, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"date": func(t interface{}, layout string) string {
			switch v := t.(type) {
			case nil:
				return ""
			case string:
				return v
			case interface{ Format(string) string }:
				return v.Format(layout)
			default:
				return ""
			}
		},
		"nowYear": func() int {
			return time.Now().Year()
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
}

func (e *Engine) render(name string, values map[string]any, dest string) error {
	t := e.tpl.Lookup(name)
	if t == nil {
		return domainerr.Render(dest, fmt.Errorf("template %s not found", name))
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, values); err != nil {
		return domainerr.Render(dest, err)
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return domainerr.IO(dest, err)
	}
	out := filepath.Join(dest, "index.html")
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return domainerr.IO(out, err)
	}
	return nil
}

// CheckThemeTemplates verifies a theme ships every template the build
// submits.
func CheckThemeTemplates(themeDir, themeName string) error {
	required := []string{
		"season.tmpl",
		"article.tmpl",
	}
	base := filepath.Join(themeDir, themeName, "templates")
	for _, name := range required {
		if _, err := os.Stat(filepath.Join(base, name)); err != nil {
			return fmt.Errorf("missing template: %s", name)
		}
	}
	return nil
}
