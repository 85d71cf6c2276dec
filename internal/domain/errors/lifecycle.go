package errors

import (
	"errors"
	"strings"
)

// Kind classifies a failure in the entity parse/render lifecycle.
type Kind int

const (
	// KindIO marks a missing or unreadable file.
	KindIO Kind = iota + 1
	// KindEncoding marks non-text content where UTF-8 text was expected.
	KindEncoding
	// KindManifest marks a malformed or schema-mismatched manifest.
	KindManifest
	// KindRender marks a templating failure.
	KindRender
	// KindLifecycle marks an operation invoked in the wrong lifecycle stage,
	// such as parsing the same node twice.
	KindLifecycle
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindEncoding:
		return "encoding"
	case KindManifest:
		return "manifest"
	case KindRender:
		return "render"
	case KindLifecycle:
		return "lifecycle"
	default:
		return "unknown"
	}
}

// Error is a lifecycle failure carrying enough context (file, entity) to
// localize the fault. There is no local recovery: every Error bubbles to
// the top-level caller untouched.
type Error struct {
	Kind Kind
	Path string
	Slug string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Slug != "" {
		b.WriteString(" [")
		b.WriteString(e.Slug)
		b.WriteString("]")
	}
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether any error in err's chain is a lifecycle Error of
// the given kind.
func IsKind(err error, kind Kind) bool {
	var le *Error
	return errors.As(err, &le) && le.Kind == kind
}

func IO(path string, err error) error {
	return &Error{Kind: KindIO, Path: path, Err: err}
}

func Encoding(path string, err error) error {
	return &Error{Kind: KindEncoding, Path: path, Err: err}
}

func Manifest(path string, err error) error {
	return &Error{Kind: KindManifest, Path: path, Err: err}
}

func Render(path string, err error) error {
	return &Error{Kind: KindRender, Path: path, Err: err}
}

func Lifecycle(slug string, err error) error {
	return &Error{Kind: KindLifecycle, Slug: slug, Err: err}
}
