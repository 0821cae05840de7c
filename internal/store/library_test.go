package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/StounhandJ/vidsaver/internal/media"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestLibraryCommitAndDelete(t *testing.T) {
	ctx := context.Background()

	l, err := NewLibrary(filepath.Join(t.TempDir(), "library"))
	require.NoError(t, err)

	transient := writeTransient(t, "gallery bytes")

	v, err := l.Commit(ctx, transient, media.Metadata{Title: "Demo", Platform: media.PlatformInstagram})
	require.NoError(t, err)

	// Id is an opaque generated identifier, not a path.
	_, err = uuid.Parse(v.ID)
	require.NoError(t, err)
	require.NotEqual(t, v.ID, v.LocalURI)

	require.Equal(t, int64(len("gallery bytes")), v.FileSize)
	require.FileExists(t, v.LocalURI)
	require.NoFileExists(t, transient)

	require.NoError(t, l.Delete(ctx, v.ID))
	require.NoFileExists(t, v.LocalURI)
}

func TestLibraryCommitMissingTransient(t *testing.T) {
	l, err := NewLibrary(filepath.Join(t.TempDir(), "library"))
	require.NoError(t, err)

	_, err = l.Commit(context.Background(), "/nonexistent.mp4", media.Metadata{})
	require.Error(t, err)

	// Nothing appears in the library on failure.
	entries, err := os.ReadDir(l.dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
