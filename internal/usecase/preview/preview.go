// Package preview prepares the on-screen rendition: the downscaled
// copy of the source image and the composed watermark frame.
package preview

import (
	"fmt"
	"image"

	"watermark-studio/internal/domain"
	"watermark-studio/internal/usecase/compose"
	"watermark-studio/internal/usecase/layer"

	"github.com/disintegration/imaging"
)

const (
	DefaultMaxWidth  = 900
	DefaultMaxHeight = 700
)

// Frame is one composed preview together with the canvas size it was
// rendered on. The canvas size is what pixel offsets captured against
// this frame are relative to.
type Frame struct {
	Image   *image.NRGBA
	CanvasW int
	CanvasH int
}

type Composer struct {
	renderer *layer.Renderer
	maxW     int
	maxH     int
}

func NewComposer(renderer *layer.Renderer, maxW, maxH int) *Composer {
	if maxW <= 0 {
		maxW = DefaultMaxWidth
	}
	if maxH <= 0 {
		maxH = DefaultMaxHeight
	}
	return &Composer{renderer: renderer, maxW: maxW, maxH: maxH}
}

// Scale caps the source image to the preview bounds with a uniform
// scale. Images already inside the bounds are never upscaled.
func (c *Composer) Scale(src image.Image) *image.NRGBA {
	return imaging.Fit(src, c.maxW, c.maxH, imaging.Lanczos)
}

// Load opens a source image and caps it to preview size. Unlike batch
// failures, a preview load error is surfaced immediately: there is only
// one image in play.
func (c *Composer) Load(path string) (*image.NRGBA, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load preview image %q: %w", path, err)
	}
	return c.Scale(src), nil
}

// Render composes the watermark described by spec onto the
// preview-scaled base and reports the canvas size used.
func (c *Composer) Render(spec domain.WatermarkSpec, base *image.NRGBA) (*Frame, error) {
	w := base.Bounds().Dx()
	h := base.Bounds().Dy()

	lyr, err := c.renderer.Render(spec, w)
	if err != nil {
		return nil, err
	}

	return &Frame{
		Image:   compose.Place(base, lyr, spec.Anchor, spec.Offset),
		CanvasW: w,
		CanvasH: h,
	}, nil
}
