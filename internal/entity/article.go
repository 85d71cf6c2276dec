package entity

import (
	"errors"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	domainerr "gazette/internal/domain/errors"
	"gazette/internal/meta"
	"gazette/internal/render"
)

// Article is a single publication entry as listed in the season manifest.
// Parse loads the markdown source it points at; Render emits the article
// page.
type Article struct {
	File        string `toml:"file"`
	Slug        string `toml:"slug"`
	Title       string `toml:"title"`
	Author      string `toml:"author"`
	Cover       string `toml:"cover"`
	Description string `toml:"description"`
	PubDate     Date   `toml:"pub_date"`
	Publish     *bool  `toml:"publish"`
	Featured    bool   `toml:"featured"`

	// Markdown is the raw article body, populated by Parse and used for
	// the season's word-frequency analysis.
	Markdown string `toml:"-"`

	parsed bool
}

// Published reports the publish flag; articles default to published.
func (a *Article) Published() bool {
	return a.Publish == nil || *a.Publish
}

// RawContent exposes the unrendered body, the input of the word-frequency
// analysis.
func (a *Article) RawContent() string { return a.Markdown }

func (a *Article) Parse(source string) error {
	if a.parsed {
		return domainerr.Lifecycle(a.Slug, errors.New("article already parsed"))
	}
	if a.Slug == "" {
		base := filepath.Base(a.File)
		a.Slug = slugify(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	path := filepath.Join(source, a.File)
	raw, err := os.ReadFile(path)
	if err != nil {
		return domainerr.IO(path, err)
	}
	if !utf8.Valid(raw) {
		return domainerr.Encoding(path, errors.New("article is not valid UTF-8"))
	}

	fm, body, err := parseFrontMatter(raw)
	switch {
	case errors.Is(err, errNoFrontMatter):
		a.Markdown = string(body)
	case err != nil:
		return domainerr.Manifest(path, err)
	default:
		if a.Title == "" {
			a.Title = fm.Title
		}
		if a.Cover == "" {
			a.Cover = fm.Cover
		}
		if a.Description == "" {
			a.Description = fm.Description
		}
		a.Markdown = string(body)
	}

	a.parsed = true
	return nil
}

func (a *Article) Render(ctx render.Context, dest string) error {
	body, err := ctx.Markdown([]byte(a.Markdown))
	if err != nil {
		return domainerr.Render(dest, err)
	}

	ctx.Insert("article", a)
	ctx.Insert("html", template.HTML(body.HTML))
	ctx.Insert("toc", body.Headings)
	ctx.Insert("meta", meta.Meta{
		Title:       a.Title,
		Description: a.description(),
		URL:         a.Slug,
		Image:       a.Cover,
	})
	return ctx.Render("article.tmpl", dest)
}

func (a *Article) description() string {
	if a.Description != "" {
		return a.Description
	}
	return meta.ExtractDescription(a.Markdown)
}
