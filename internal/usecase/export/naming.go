package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"watermark-studio/internal/domain"
)

// outputExt maps the export format to a file extension. JPEG exports
// use ".jpg", matching what users expect to see.
func outputExt(f domain.ExportFormat) string {
	if f == domain.FormatPNG {
		return ".png"
	}
	return ".jpg"
}

// applyNaming derives the output filename from the source path per the
// naming rule. The stem keeps its original case; only the extension is
// replaced by the export format's.
func applyNaming(srcPath string, settings domain.ExportSettings) string {
	base := filepath.Base(srcPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	switch settings.NamingRule {
	case domain.NamingPrefix:
		if settings.Prefix != "" {
			stem = settings.Prefix + stem
		}
	case domain.NamingSuffix:
		if settings.Suffix != "" {
			stem = stem + settings.Suffix
		}
	}

	return stem + outputExt(settings.Format)
}

// safePath resolves filename collisions by appending _1, _2, ... before
// the extension until a non-existing path is found.
func safePath(dir, name string) string {
	target := filepath.Join(dir, name)

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 1; ; i++ {
		if _, err := os.Stat(target); err != nil {
			// NotExist means the slot is free. Any other stat failure
			// (name too long, unsearchable directory) is persistent, so
			// probing further names cannot help; return the target and
			// let file creation surface it as a counted write failure.
			return target
		}
		target = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
	}
}
