// Package session holds the mutable state of one interactive editing
// session: the watermark spec, the preview-scaled image and the frame
// shown on screen. The UI is only a producer of discrete events (drag
// deltas, control changes); no event-loop mechanism is assumed here.
package session

import (
	"context"
	"image"

	"watermark-studio/internal/domain"
	"watermark-studio/internal/usecase/export"
	"watermark-studio/internal/usecase/geometry"
	"watermark-studio/internal/usecase/preview"

	"github.com/wb-go/wbf/zlog"
)

type Session struct {
	composer *preview.Composer
	exporter *export.Exporter
	logger   *zlog.Zerolog

	spec    domain.WatermarkSpec
	srcPath string
	base    *image.NRGBA
	frame   *preview.Frame
}

func New(composer *preview.Composer, exporter *export.Exporter, logger *zlog.Zerolog) *Session {
	return &Session{
		composer: composer,
		exporter: exporter,
		logger:   logger,
		spec:     domain.DefaultSpec(),
	}
}

// Open loads a source image as the live preview subject. Load failures
// are surfaced immediately, unlike batch failures.
func (s *Session) Open(path string) error {
	base, err := s.composer.Load(path)
	if err != nil {
		return err
	}

	s.srcPath = path
	s.base = base
	s.logger.Info().
		Str("source", path).
		Int("canvas_w", base.Bounds().Dx()).
		Int("canvas_h", base.Bounds().Dy()).
		Msg("Preview image loaded")

	return s.recompose()
}

// Spec returns a copy of the current watermark spec.
func (s *Session) Spec() domain.WatermarkSpec {
	return s.spec
}

// Update mutates the spec through fn and recomposes the preview. Mode
// switches go through here too: anchor, offset and rotation live on the
// shared envelope, so positioning intent survives the switch and the
// offset is simply reinterpreted against the new layer's bounding box.
func (s *Session) Update(fn func(*domain.WatermarkSpec)) error {
	fn(&s.spec)
	s.spec.Rotation = domain.ClampRotation(s.spec.Rotation)
	return s.recompose()
}

// DragBy accumulates one drag delta, captured against the current
// preview canvas.
func (s *Session) DragBy(dx, dy int) error {
	s.spec.Offset.DX += dx
	s.spec.Offset.DY += dy
	return s.recompose()
}

// Frame returns the most recently composed preview, or nil before the
// first Open.
func (s *Session) Frame() *preview.Frame {
	return s.frame
}

// CaptureRatio translates the accumulated pixel offset into a
// resolution-independent ratio against the current preview canvas.
func (s *Session) CaptureRatio() domain.RatioOffset {
	if s.frame == nil {
		return domain.RatioOffset{}
	}
	return geometry.ToRatio(s.spec.Offset, s.frame.CanvasW, s.frame.CanvasH)
}

// Export replays the current placement across the given sources.
func (s *Session) Export(ctx context.Context, paths []string, settings domain.ExportSettings) (domain.BatchReport, error) {
	if err := s.spec.Validate(); err != nil {
		return domain.BatchReport{}, err
	}
	return s.exporter.ExportBatch(ctx, paths, s.spec, s.CaptureRatio(), settings)
}

func (s *Session) recompose() error {
	if s.base == nil {
		return nil
	}
	frame, err := s.composer.Render(s.spec, s.base)
	if err != nil {
		return err
	}
	s.frame = frame
	return nil
}
