package tokenize

import (
	"fmt"

	"github.com/go-ego/gse"
)

// Tokenizer segments raw text into words. It is dictionary-driven rather
// than whitespace-driven, so CJK content splits on word boundaries instead
// of falling apart into single runes.
type Tokenizer struct {
	seg gse.Segmenter
}

// New builds a tokenizer with the embedded default dictionary loaded.
func New() (*Tokenizer, error) {
	var t Tokenizer
	if err := t.seg.LoadDict(); err != nil {
		return nil, fmt.Errorf("load segmenter dictionary: %w", err)
	}
	return &t, nil
}

// Cut segments text into tokens. HMM mode is enabled so words missing from
// the dictionary still come out as plausible units.
func (t *Tokenizer) Cut(text string) []string {
	return t.seg.Cut(text, true)
}
