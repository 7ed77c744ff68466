// exifstamp stamps photos with their EXIF capture date, using the same
// layer rendering and compositing primitives the studio uses, at full
// source resolution.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"watermark-studio/internal/domain"
	"watermark-studio/internal/repository/source"
	"watermark-studio/internal/usecase/compose"
	"watermark-studio/internal/usecase/layer"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	flag "github.com/spf13/pflag"
	"github.com/wb-go/wbf/zlog"
)

func main() {
	inPath := flag.StringP("in", "i", "", "image file or directory to stamp")
	outDir := flag.StringP("out", "o", "", "output directory (default <input>_watermark)")
	fontSize := flag.Int("font-size", 50, "font size of the stamp in pixels")
	colorStr := flag.String("color", "255,255,255", "stamp color as R,G,B")
	opacity := flag.Float64("opacity", 1.0, "stamp opacity in [0,1]")
	position := flag.String("position", "bottom-right", "stamp anchor (nine-grid name)")
	flag.Parse()

	zlog.Init()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: exifstamp -i <file-or-dir> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	rgb, err := domain.ParseRGB(*colorStr)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Invalid color")
	}

	paths := source.NewLoader(0, 0).Collect([]string{*inPath})
	if len(paths) == 0 {
		zlog.Logger.Fatal().Str("path", *inPath).Msg("No supported images found")
	}

	dir := *outDir
	if dir == "" {
		base := strings.TrimSuffix(*inPath, string(filepath.Separator))
		if info, err := os.Stat(*inPath); err == nil && !info.IsDir() {
			base = filepath.Dir(base)
		}
		dir = base + "_watermark"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		zlog.Logger.Fatal().Err(err).Str("dir", dir).Msg("Failed to create output directory")
	}

	renderer, err := layer.NewRenderer()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Failed to create renderer")
	}

	anchor := domain.ParseAnchor(*position)
	stamped, skipped := 0, 0

	for _, p := range paths {
		if err := stampOne(renderer, p, dir, *fontSize, rgb, *opacity, anchor); err != nil {
			zlog.Logger.Warn().Err(err).Str("source", p).Msg("Skipped")
			skipped++
			continue
		}
		stamped++
	}

	zlog.Logger.Info().Int("stamped", stamped).Int("skipped", skipped).Msg("Done")
}

func stampOne(renderer *layer.Renderer, path, outDir string, fontSize int, rgb domain.RGB, opacity float64, anchor domain.Anchor) error {
	date, err := captureDate(path)
	if err != nil {
		return fmt.Errorf("no capture date: %w", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	lyr, err := renderer.RenderText(domain.TextWatermark{
		Content:  date,
		FontSize: fontSize,
		Color:    rgb,
		Opacity:  opacity,
	})
	if err != nil {
		return fmt.Errorf("failed to render stamp: %w", err)
	}

	out := compose.Place(img, lyr, anchor, domain.PixelOffset{})

	target := filepath.Join(outDir, filepath.Base(path))
	if err := imaging.Save(out, target); err != nil {
		return fmt.Errorf("failed to save %q: %w", target, err)
	}
	return nil
}

// captureDate extracts the shooting date from EXIF, formatted as
// YYYY-MM-DD.
func captureDate(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return "", err
	}

	t, err := x.DateTime()
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}
