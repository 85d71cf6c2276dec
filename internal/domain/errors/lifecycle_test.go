package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsKind(t *testing.T) {
	err := IO("season/gazette.toml", fs.ErrNotExist)
	require.True(t, IsKind(err, KindIO))
	require.False(t, IsKind(err, KindManifest))

	wrapped := fmt.Errorf("parse season: %w", err)
	require.True(t, IsKind(wrapped, KindIO))

	require.False(t, IsKind(errors.New("plain"), KindIO))
	require.False(t, IsKind(nil, KindIO))
}

func TestErrorUnwrap(t *testing.T) {
	err := Manifest("gazette.toml", fs.ErrInvalid)
	require.ErrorIs(t, err, fs.ErrInvalid)
}

func TestErrorMessageCarriesContext(t *testing.T) {
	err := Lifecycle("s1", errors.New("season already parsed"))
	require.Contains(t, err.Error(), "s1")
	require.Contains(t, err.Error(), "already parsed")

	ioErr := IO("content/first.md", fs.ErrNotExist)
	require.Contains(t, ioErr.Error(), "content/first.md")
}

func TestValidationError_IsErrInvalid(t *testing.T) {
	var ve ValidationError
	ve.Add("season.slug", "must not be empty")
	require.ErrorIs(t, error(ve), ErrInvalid)
	require.True(t, ve.HasAny())
	require.Contains(t, ve.Error(), "season.slug")
}
