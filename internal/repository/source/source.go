// Package source collects watermarkable images from files and
// directories and serves cached thumbnails for list display.
package source

import (
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

var supportedExt = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".bmp":  {},
	".tif":  {},
	".tiff": {},
}

// IsSupported reports whether the path names an existing file in a
// supported raster format.
func IsSupported(path string) bool {
	if _, ok := supportedExt[strings.ToLower(filepath.Ext(path))]; !ok {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Loader walks input paths and caches thumbnails in memory. The cache
// has no invalidation: a path's thumbnail lives until the loader does.
type Loader struct {
	thumbW int
	thumbH int

	mu     sync.Mutex
	thumbs map[string]image.Image
}

func NewLoader(thumbW, thumbH int) *Loader {
	if thumbW <= 0 {
		thumbW = 128
	}
	if thumbH <= 0 {
		thumbH = 128
	}
	return &Loader{
		thumbW: thumbW,
		thumbH: thumbH,
		thumbs: make(map[string]image.Image),
	}
}

// Collect expands files and directories into the ordered, de-duplicated
// list of supported image paths. Directories are walked recursively;
// unreadable entries are skipped.
func (l *Loader) Collect(inputs []string) []string {
	var results []string

	for _, p := range inputs {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if info.IsDir() {
			filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil || d.IsDir() {
					return nil
				}
				if IsSupported(path) {
					results = append(results, path)
				}
				return nil
			})
			continue
		}
		if IsSupported(p) {
			results = append(results, p)
		}
	}

	seen := make(map[string]struct{}, len(results))
	uniq := results[:0]
	for _, p := range results {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		uniq = append(uniq, p)
	}
	return uniq
}

// Thumbnail returns the cached thumbnail for path, decoding and fitting
// it on first use.
func (l *Loader) Thumbnail(path string) (image.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.thumbs[path]; ok {
		return img, nil
	}

	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load thumbnail source %q: %w", path, err)
	}

	thumb := imaging.Fit(src, l.thumbW, l.thumbH, imaging.Lanczos)
	l.thumbs[path] = thumb
	return thumb, nil
}
