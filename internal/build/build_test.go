package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gazette/internal/domain/config"
	domainerr "gazette/internal/domain/errors"
	"gazette/internal/index"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// buildFixture lays out a complete single-season site: source tree, theme
// and an empty public dir, and returns a config pointing at all of it.
func buildFixture(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()

	source := filepath.Join(root, "source")
	manifest := `
[season]
slug = "s1"
number = 1
title = "Season One"
intro = "intro.md"

[[article]]
file = "first.md"
slug = "first"
title = "First"
pub_date = "2024-01-05"

[[article]]
file = "second.md"
slug = "second"
title = "Second"
pub_date = "2024-03-05"

[[article]]
file = "third.md"
slug = "third"
title = "Third"
pub_date = "2024-02-05"
`
	writeTestFile(t, filepath.Join(source, "gazette.toml"), manifest)
	writeTestFile(t, filepath.Join(source, "intro.md"), "An issue about ideas.\n")
	writeTestFile(t, filepath.Join(source, "first.md"), "灵感是一种力量。\n")
	writeTestFile(t, filepath.Join(source, "second.md"), "写作需要灵感。\n")
	writeTestFile(t, filepath.Join(source, "third.md"), "灵感来自生活。\n")

	themes := filepath.Join(root, "themes")
	writeTestFile(t, filepath.Join(themes, "default", "templates", "season.tmpl"),
		`<h1>{{.season.Title}}</h1><desc>{{.meta.Description}}</desc>`)
	writeTestFile(t, filepath.Join(themes, "default", "templates", "article.tmpl"),
		`<n>{{.number}}</n><prev>{{with .siblings.Prev}}{{.Slug}}{{end}}</prev>`+
			`<next>{{with .siblings.Next}}{{.Slug}}{{end}}</next>{{.html}}`)

	cfg := config.Default()
	cfg.Build.SourceDir = source
	cfg.Build.PublicDir = filepath.Join(root, "public")
	cfg.Build.ThemeDir = themes
	cfg.Build.IndexPath = filepath.Join(root, "index.db")
	return cfg
}

func TestBuilderRun_EndToEnd(t *testing.T) {
	cfg := buildFixture(t)
	b := &Builder{Cfg: cfg}

	res, err := b.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, res.Articles)
	require.Equal(t, "s1", res.Season.Slug)
	require.Equal(t, 3, res.Season.WordFrequency["灵感"])

	seasonPage, err := os.ReadFile(filepath.Join(cfg.Build.PublicDir, "s1", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(seasonPage), "Season One")
	require.Contains(t, string(seasonPage), "An issue about ideas.")

	// "third" sorts into the middle slot: number 2 between first and second.
	middle, err := os.ReadFile(filepath.Join(cfg.Build.PublicDir, "s1", "third", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(middle), "<n>2</n>")
	require.Contains(t, string(middle), "<prev>first</prev>")
	require.Contains(t, string(middle), "<next>second</next>")
}

func TestBuilderRun_RecordsStats(t *testing.T) {
	cfg := buildFixture(t)
	b := &Builder{Cfg: cfg}

	_, err := b.Run(context.Background())
	require.NoError(t, err)

	st, err := index.Open(index.OpenOptions{Path: cfg.Build.IndexPath})
	require.NoError(t, err)
	defer st.Close()

	n, err := st.WordCount("s1", "灵感")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	rec, err := st.SeasonInfo("s1")
	require.NoError(t, err)
	require.Equal(t, 3, rec.Articles)
}

func TestBuilderRun_MissingSourceManifest(t *testing.T) {
	cfg := buildFixture(t)
	cfg.Build.SourceDir = t.TempDir()
	b := &Builder{Cfg: cfg}

	_, err := b.Run(context.Background())
	require.Error(t, err)
	require.True(t, domainerr.IsKind(err, domainerr.KindIO))
}

func TestLoadSeason_ReadsDescriptorTable(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "gazette.toml"), `
[season]
slug = "s9"
number = 9
title = "The Ninth"
cover = "cover.png"
`)

	season, err := LoadSeason(dir)
	require.NoError(t, err)
	require.Equal(t, "s9", season.Slug)
	require.Equal(t, uint32(9), season.Number)
	require.Equal(t, "The Ninth", season.Title)
	require.Equal(t, "cover.png", season.Cover)
	require.Equal(t, ".", season.Path, "path defaults to the source root")
	require.Empty(t, season.Articles, "articles belong to Parse, not the descriptor")
}

func TestLoadSeason_ValidatesRequiredFields(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "gazette.toml"), `
[season]
number = 1
`)

	_, err := LoadSeason(dir)
	require.Error(t, err)
	require.ErrorIs(t, err, domainerr.ErrInvalid)
	require.Contains(t, err.Error(), "season.slug")
	require.Contains(t, err.Error(), "season.title")
}
