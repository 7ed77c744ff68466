// Package export replays a preview-approved watermark placement across
// a batch of source images and writes the results to disk.
package export

import (
	"context"
	"fmt"
	"os"
	"sync"

	"watermark-studio/internal/domain"
	"watermark-studio/internal/usecase/compose"
	"watermark-studio/internal/usecase/geometry"
	"watermark-studio/internal/usecase/layer"
	"watermark-studio/internal/usecase/preview"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

type Exporter struct {
	renderer *layer.Renderer
	preview  *preview.Composer
	logger   *zlog.Zerolog
	workers  int

	// nameMu serializes collision probing and file creation so two
	// workers cannot claim the same output path.
	nameMu sync.Mutex
}

// NewExporter builds an exporter sharing the renderer and preview
// composer of the interactive session, so export goes through exactly
// the same scaling and compositing path the user approved on screen.
func NewExporter(renderer *layer.Renderer, previewComposer *preview.Composer, logger *zlog.Zerolog, workers int) *Exporter {
	if workers < 1 {
		workers = 1
	}
	return &Exporter{
		renderer: renderer,
		preview:  previewComposer,
		logger:   logger,
		workers:  workers,
	}
}

// ExportBatch watermarks every source path independently and writes the
// results per settings. A single image's failure never aborts the
// batch; the report carries aggregate counts only. The returned error
// covers setup failures that prevent the batch from starting at all.
func (e *Exporter) ExportBatch(ctx context.Context, paths []string, spec domain.WatermarkSpec, offset domain.RatioOffset, settings domain.ExportSettings) (domain.BatchReport, error) {
	if err := settings.Validate(); err != nil {
		return domain.BatchReport{}, err
	}
	if err := os.MkdirAll(settings.OutputDir, 0o755); err != nil {
		return domain.BatchReport{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	batchID := uuid.New().String()
	e.logger.Info().
		Str("batch_id", batchID).
		Int("images", len(paths)).
		Str("output_dir", settings.OutputDir).
		Str("format", string(settings.Format)).
		Msg("Starting batch export")

	var (
		mu     sync.Mutex
		report domain.BatchReport
	)

	record := func(path string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			report.Failed++
			e.logger.Error().Err(err).
				Str("batch_id", batchID).
				Str("source", path).
				Msg("Export failed for image")
			return
		}
		report.Succeeded++
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				record(p, e.exportOne(p, spec, offset, settings))
			}
		}()
	}

	for _, p := range paths {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return report, ctx.Err()
		case jobs <- p:
		}
	}
	close(jobs)
	wg.Wait()

	e.logger.Info().
		Str("batch_id", batchID).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("Batch export completed")

	return report, nil
}

// exportOne reproduces the preview composition for one source image:
// same scale cap, same layer rendering, same compose call. The ratio
// offset is replayed against this image's preview canvas.
func (e *Exporter) exportOne(path string, spec domain.WatermarkSpec, offset domain.RatioOffset, settings domain.ExportSettings) error {
	src, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("failed to load source image: %w", err)
	}

	base := e.preview.Scale(src)
	w := base.Bounds().Dx()
	h := base.Bounds().Dy()

	lyr, err := e.renderer.Render(spec, w)
	if err != nil {
		return fmt.Errorf("failed to render watermark layer: %w", err)
	}

	out := compose.Place(base, lyr, spec.Anchor, geometry.ToPixels(offset, w, h))

	resized := applyResize(out, settings.Resize)

	e.nameMu.Lock()
	target := safePath(settings.OutputDir, applyNaming(path, settings))
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	e.nameMu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := save(f, resized, settings); err != nil {
		return err
	}

	e.logger.Debug().
		Str("source", path).
		Str("target", target).
		Msg("Image exported")
	return nil
}
