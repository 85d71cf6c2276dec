package entity

import (
	"errors"
	"os"
	"path/filepath"
	"unicode/utf8"

	domainerr "gazette/internal/domain/errors"
)

// Intro is the season introduction as a staged value. Before parsing it
// holds the path of the introduction file (as written in the manifest);
// Load transitions it exactly once to the decoded markdown text. The two
// states are kept distinct so the lifecycle invariant is carried by the
// type, not by convention.
type Intro struct {
	path   string
	text   string
	loaded bool
}

// NewIntro returns an intro in its unloaded state, pointing at path.
func NewIntro(path string) *Intro {
	return &Intro{path: path}
}

// UnmarshalText accepts the manifest's string form, which is always a path.
func (in *Intro) UnmarshalText(data []byte) error {
	in.path = string(data)
	in.text = ""
	in.loaded = false
	return nil
}

// Path returns the source path; it stays meaningful after loading so errors
// and logs can still name the file.
func (in *Intro) Path() string { return in.path }

// Loaded reports whether the value holds decoded text.
func (in *Intro) Loaded() bool { return in.loaded }

// Text returns the decoded markdown and true, or "" and false before Load.
func (in *Intro) Text() (string, bool) {
	if !in.loaded {
		return "", false
	}
	return in.text, true
}

// Load reads the introduction file relative to dir and transitions to the
// loaded state. A second Load is a lifecycle error; a missing file or
// non-UTF-8 content is a hard failure, never treated as "no introduction".
func (in *Intro) Load(dir string) error {
	if in.loaded {
		return domainerr.Lifecycle("", errors.New("introduction already loaded"))
	}

	path := filepath.Join(dir, in.path)
	raw, err := os.ReadFile(path)
	if err != nil {
		return domainerr.IO(path, err)
	}
	if !utf8.Valid(raw) {
		return domainerr.Encoding(path, errors.New("introduction is not valid UTF-8"))
	}

	in.text = string(raw)
	in.loaded = true
	return nil
}
