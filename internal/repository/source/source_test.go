package source

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	img := imaging.New(64, 48, color.NRGBA{R: 50, G: 60, B: 70, A: 255})
	require.NoError(t, imaging.Save(img, path))
	return path
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	a := writeImage(t, dir, "a.png")
	b := writeImage(t, dir, "b.jpg")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	c := writeImage(t, sub, "c.png")

	l := NewLoader(128, 128)

	t.Run("single file", func(t *testing.T) {
		require.Equal(t, []string{a}, l.Collect([]string{a}))
	})

	t.Run("directory walks recursively and filters", func(t *testing.T) {
		got := l.Collect([]string{dir})
		require.ElementsMatch(t, []string{a, b, c}, got)
	})

	t.Run("duplicates are removed, order preserved", func(t *testing.T) {
		got := l.Collect([]string{b, a, b})
		require.Equal(t, []string{b, a}, got)
	})

	t.Run("unsupported and missing inputs are skipped", func(t *testing.T) {
		got := l.Collect([]string{filepath.Join(dir, "notes.txt"), filepath.Join(dir, "missing.png")})
		require.Empty(t, got)
	})
}

func TestIsSupported(t *testing.T) {
	dir := t.TempDir()
	img := writeImage(t, dir, "ok.PNG")

	require.True(t, IsSupported(img))
	require.False(t, IsSupported(filepath.Join(dir, "missing.png")))
	require.False(t, IsSupported("/dev/null"))
}

func TestThumbnailCache(t *testing.T) {
	dir := t.TempDir()
	img := writeImage(t, dir, "a.png")

	l := NewLoader(32, 32)

	first, err := l.Thumbnail(img)
	require.NoError(t, err)
	require.LessOrEqual(t, first.Bounds().Dx(), 32)
	require.LessOrEqual(t, first.Bounds().Dy(), 32)

	again, err := l.Thumbnail(img)
	require.NoError(t, err)
	require.Same(t, first, again)
}

func TestThumbnailUnreadable(t *testing.T) {
	l := NewLoader(32, 32)

	_, err := l.Thumbnail(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}
