package entity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	domainerr "gazette/internal/domain/errors"
	"gazette/internal/meta"
	"gazette/internal/render"
	"gazette/internal/tokenize"
)

// Season groups the articles of one publication issue. Its descriptor comes
// from manifest deserialization; Parse fills in everything derived from the
// season directory.
type Season struct {
	Slug   string `toml:"slug"`
	Number uint32 `toml:"number"`
	Title  string `toml:"title"`
	Intro  *Intro `toml:"intro"`
	Cover  string `toml:"cover"`
	Path   string `toml:"path"`

	// Articles is empty before Parse and sorted ascending by publication
	// date afterwards; equal dates keep manifest order.
	Articles []*Article `toml:"-"`

	// WordFrequency maps tokens of two or more runes to their count across
	// every article body. Deterministic iteration goes through
	// WordFrequencies.
	WordFrequency map[string]int `toml:"-"`

	parsed bool
}

// seasonFile is the portion of the season manifest Parse cares about: the
// repeated article key. The [season] descriptor table in the same file is
// read by the builder, not here.
type seasonFile struct {
	Articles []*Article `toml:"article"`
}

func (s *Season) Parse(source string) error {
	if s.parsed {
		return domainerr.Lifecycle(s.Slug, errors.New("season already parsed"))
	}

	if s.Intro != nil {
		if err := s.Intro.Load(source); err != nil {
			return err
		}
	}

	dir := filepath.Join(source, s.Path)
	manifestPath := filepath.Join(dir, ManifestFile)
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return domainerr.IO(manifestPath, err)
	}
	if !utf8.Valid(raw) {
		return domainerr.Encoding(manifestPath, errors.New("manifest is not valid UTF-8"))
	}

	var file seasonFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return domainerr.Manifest(manifestPath, err)
	}

	s.Articles = file.Articles
	sort.SliceStable(s.Articles, func(i, j int) bool {
		return s.Articles[i].PubDate.Before(s.Articles[j].PubDate.Time)
	})

	if err := parseArticles(s.Articles, dir); err != nil {
		return err
	}

	if err := s.analyzeWords(); err != nil {
		return err
	}

	s.parsed = true
	return nil
}

// analyzeWords builds the corpus-wide frequency table over every article
// body. Single-rune tokens are deliberately excluded; they are almost
// always particles and punctuation.
func (s *Season) analyzeWords() error {
	tok, err := tokenize.New()
	if err != nil {
		return fmt.Errorf("season %s: %w", s.Slug, err)
	}

	freq := make(map[string]int)
	for _, a := range s.Articles {
		for _, word := range tok.Cut(a.RawContent()) {
			if utf8.RuneCountInString(word) > 1 {
				freq[word]++
			}
		}
	}
	s.WordFrequency = freq
	return nil
}

// WordCount is one row of the season's frequency table.
type WordCount struct {
	Word  string
	Count int
}

// WordFrequencies returns the frequency table sorted lexicographically by
// token, the deterministic order templates and the stats index consume.
func (s *Season) WordFrequencies() []WordCount {
	words := make([]string, 0, len(s.WordFrequency))
	for w := range s.WordFrequency {
		words = append(words, w)
	}
	sort.Strings(words)

	out := make([]WordCount, 0, len(words))
	for _, w := range words {
		out = append(out, WordCount{Word: w, Count: s.WordFrequency[w]})
	}
	return out
}

// Siblings is the navigation pair handed to an article's template: the
// previous and next article in publication order, either of which may be
// nil at the edges.
type Siblings struct {
	Prev *Article
	Next *Article
}

// siblingArticles is a pure positional lookup into the sorted article list.
// Out-of-range indices yield nil/nil rather than panicking.
func (s *Season) siblingArticles(i int) Siblings {
	if i < 0 || i >= len(s.Articles) {
		return Siblings{}
	}
	var sib Siblings
	if i > 0 {
		sib.Prev = s.Articles[i-1]
	}
	if i+1 < len(s.Articles) {
		sib.Next = s.Articles[i+1]
	}
	return sib
}

func (s *Season) description() string {
	if s.Intro == nil {
		return ""
	}
	text, ok := s.Intro.Text()
	if !ok {
		return ""
	}
	return meta.ExtractDescription(text)
}

func (s *Season) Render(ctx render.Context, dest string) error {
	seasonDir := filepath.Join(dest, s.Slug)

	ctx = ctx.Clone()
	ctx.Insert("season", s)

	for i, article := range s.Articles {
		articleCtx := ctx.Clone()
		articleCtx.Insert("siblings", s.siblingArticles(i))
		articleCtx.Insert("number", i+1)
		if err := article.Render(articleCtx, filepath.Join(seasonDir, article.Slug)); err != nil {
			return err
		}
	}

	ctx.Insert("meta", meta.Meta{
		Title:       s.Title,
		Description: s.description(),
		URL:         s.Slug,
		Image:       s.Cover,
	})
	return ctx.Render("season.tmpl", seasonDir)
}
