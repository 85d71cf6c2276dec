package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domainerr "gazette/internal/domain/errors"
)

func TestArticleParse_LoadsBody(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "post.md"), "# Heading\n\nBody text.\n")

	a := &Article{File: "post.md", Slug: "post", Title: "Post"}
	require.NoError(t, a.Parse(dir))
	require.Contains(t, a.Markdown, "Body text.")
}

func TestArticleParse_MissingFile(t *testing.T) {
	a := &Article{File: "gone.md", Slug: "gone"}

	err := a.Parse(t.TempDir())
	require.Error(t, err)
	require.True(t, domainerr.IsKind(err, domainerr.KindIO))
	require.Contains(t, err.Error(), "gone.md")
}

func TestArticleParse_InvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.md")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644))

	a := &Article{File: "bad.md", Slug: "bad"}
	err := a.Parse(dir)
	require.Error(t, err)
	require.True(t, domainerr.IsKind(err, domainerr.KindEncoding))
}

func TestArticleParse_DerivesSlugFromFileName(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "Hello World.md"), "body\n")

	a := &Article{File: "Hello World.md"}
	require.NoError(t, a.Parse(dir))
	require.Equal(t, "hello-world", a.Slug)
}

func TestArticleParse_FrontMatterFillsEmptyFields(t *testing.T) {
	dir := t.TempDir()
	src := "---\ntitle: From Front Matter\ncover: cover.png\n---\nBody only.\n"
	writeTestFile(t, filepath.Join(dir, "post.md"), src)

	a := &Article{File: "post.md", Slug: "post"}
	require.NoError(t, a.Parse(dir))

	require.Equal(t, "From Front Matter", a.Title)
	require.Equal(t, "cover.png", a.Cover)
	require.Equal(t, "Body only.", a.Markdown)
}

func TestArticleParse_ManifestFieldsWinOverFrontMatter(t *testing.T) {
	dir := t.TempDir()
	src := "---\ntitle: Ignored\n---\nBody.\n"
	writeTestFile(t, filepath.Join(dir, "post.md"), src)

	a := &Article{File: "post.md", Slug: "post", Title: "Manifest Title"}
	require.NoError(t, a.Parse(dir))
	require.Equal(t, "Manifest Title", a.Title)
}

func TestArticleParse_SecondParseFails(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "post.md"), "body\n")

	a := &Article{File: "post.md", Slug: "post"}
	require.NoError(t, a.Parse(dir))

	err := a.Parse(dir)
	require.Error(t, err)
	require.True(t, domainerr.IsKind(err, domainerr.KindLifecycle))
}

func TestArticlePublished_DefaultsTrue(t *testing.T) {
	a := &Article{}
	require.True(t, a.Published())

	no := false
	a.Publish = &no
	require.False(t, a.Published())
}

func TestDateUnmarshalText(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalText([]byte("2024-02-03")))
	require.Equal(t, 2024, d.Year())
	require.Equal(t, 3, d.Day())

	require.NoError(t, d.UnmarshalText([]byte("2024-02-03 15:04")))
	require.Equal(t, 15, d.Hour())

	require.Error(t, d.UnmarshalText([]byte("not a date")))
}
