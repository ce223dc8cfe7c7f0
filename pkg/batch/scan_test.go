package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
}

func baseNames(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, filepath.Base(p))
	}
	return out
}

func TestListInputs_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.mp4", "a.mov", "notes.txt", "c.avi")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.mp4"), 0o755))

	got, err := ListInputs(dir, []string{".mov", ".mp4", ".avi", ".mkv"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.mov", "b.mp4", "c.avi"}, baseNames(got))
}

func TestListInputs_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "upper.JPG", "lower.jpg")

	got, err := ListInputs(dir, []string{".jpg"})
	require.NoError(t, err)

	assert.Equal(t, []string{"lower.jpg", "upper.JPG"}, baseNames(got))
}

func TestListInputs_DeduplicatesCaseVariants(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "cat.MP4", "cat.mp4", "other.mp4")

	got, err := ListInputs(dir, []string{".mp4"})
	require.NoError(t, err)

	// Exactly one of the case variants is kept.
	require.Len(t, got, 2)
	assert.Equal(t, "other.mp4", filepath.Base(got[1]))
}

func TestListInputs_MissingDirectory(t *testing.T) {
	_, err := ListInputs(filepath.Join(t.TempDir(), "nope"), []string{".jpg"})
	assert.Error(t, err)
}

func TestListInputs_EmptyDirectory(t *testing.T) {
	got, err := ListInputs(t.TempDir(), []string{".jpg"})
	require.NoError(t, err)
	assert.Empty(t, got)
}
