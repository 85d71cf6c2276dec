package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"gazette/internal/domain/config"
	domainerr "gazette/internal/domain/errors"
	"gazette/internal/domain/site"
	"gazette/internal/entity"
	"gazette/internal/index"
	"gazette/internal/render"
)

// Builder runs one full build: season construction, parse, render, stats
// recording.
type Builder struct {
	Cfg    config.Config
	Logger *slog.Logger
}

type Result struct {
	Season   *entity.Season
	Articles int
	Words    int
}

func (b *Builder) Run(ctx context.Context) (*Result, error) {
	log := b.Logger
	if log == nil {
		log = slog.Default()
	}

	season, err := LoadSeason(b.Cfg.Build.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("load season: %w", err)
	}
	log.Info("season loaded", "slug", season.Slug, "title", season.Title)

	if err := season.Parse(b.Cfg.Build.SourceDir); err != nil {
		return nil, fmt.Errorf("parse season: %w", err)
	}
	log.Info("season parsed",
		"slug", season.Slug,
		"articles", len(season.Articles),
		"words", len(season.WordFrequency),
	)

	engine, err := render.NewEngine(b.Cfg.Build.ThemeDir, b.Cfg.Site.Theme)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	outDir := b.Cfg.Build.PublicDir
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir public: %w", err)
	}

	rctx := engine.Context()
	rctx.Insert("site", b.Cfg.Site)
	if err := season.Render(rctx, outDir); err != nil {
		return nil, fmt.Errorf("render season: %w", err)
	}
	for _, route := range site.SeasonRoutes(season) {
		log.Debug("rendered", "route", route.String())
	}

	if path := b.Cfg.Build.IndexPath; path != "" {
		if err := recordStats(path, season); err != nil {
			return nil, fmt.Errorf("record stats: %w", err)
		}
	}

	return &Result{
		Season:   season,
		Articles: len(season.Articles),
		Words:    len(season.WordFrequency),
	}, nil
}

func recordStats(path string, season *entity.Season) error {
	st, err := index.Open(index.OpenOptions{Path: path})
	if err != nil {
		return err
	}
	defer st.Close()
	return st.RecordSeason(season)
}

// seasonDescriptor is the [season] table of the manifest at the source
// root. The repeated [[article]] key in the same file belongs to
// Season.Parse.
type seasonDescriptor struct {
	Season entity.Season `toml:"season"`
}

// LoadSeason constructs the season from the descriptor table of the
// manifest in dir. A missing path defaults to the source root itself, so a
// single-season tree needs no directory nesting.
func LoadSeason(dir string) (*entity.Season, error) {
	path := filepath.Join(dir, entity.ManifestFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, domainerr.IO(path, err)
	}

	var d seasonDescriptor
	if err := toml.Unmarshal(raw, &d); err != nil {
		return nil, domainerr.Manifest(path, err)
	}

	season := d.Season
	if season.Path == "" {
		season.Path = "."
	}

	var ve domainerr.ValidationError
	if strings.TrimSpace(season.Slug) == "" {
		ve.Add("season.slug", "must not be empty")
	}
	if strings.TrimSpace(season.Title) == "" {
		ve.Add("season.title", "must not be empty")
	}
	if ve.HasAny() {
		return nil, ve
	}

	return &season, nil
}
