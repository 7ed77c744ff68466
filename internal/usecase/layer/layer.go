// Package layer renders a watermark into an independent transparent
// bitmap, decoupled from the base photo it will be composed onto.
package layer

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"watermark-studio/internal/domain"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Renderer produces watermark layers. It owns the parsed font, a face
// cache keyed by pixel size and a watermark-bitmap cache keyed by file
// path. Call sites receive the instance explicitly; there is no global
// state.
type Renderer struct {
	font *truetype.Font

	mu    sync.Mutex
	faces map[int]font.Face
	marks map[string]image.Image
}

func NewRenderer() (*Renderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	return &Renderer{
		font:  f,
		faces: make(map[int]font.Face),
		marks: make(map[string]image.Image),
	}, nil
}

// Render produces the layer for the active variant of spec, including
// the rotation post-process. baseWidth is the width of the canvas the
// layer will be placed on; only the image variant scales against it.
func (r *Renderer) Render(spec domain.WatermarkSpec, baseWidth int) (*image.NRGBA, error) {
	var (
		lyr *image.NRGBA
		err error
	)

	switch spec.Mode {
	case domain.ModeImage:
		lyr, err = r.RenderImage(spec.Image, baseWidth)
	default:
		lyr, err = r.RenderText(spec.Text)
	}
	if err != nil {
		return nil, err
	}

	return rotateLayer(lyr, spec.Rotation), nil
}

// InvalidateMark drops a cached watermark bitmap. Called when the user
// reselects the watermark file; there is no other invalidation.
func (r *Renderer) InvalidateMark(path string) {
	r.mu.Lock()
	delete(r.marks, path)
	r.mu.Unlock()
}

// rotateLayer rotates the completed layer around its center, growing
// the bounding box to contain the rotated corners. Rotation is a
// post-process on the finished bitmap, never on individual glyphs.
func rotateLayer(img *image.NRGBA, degrees int) *image.NRGBA {
	degrees = domain.ClampRotation(degrees)
	if degrees == 0 {
		return img
	}
	return imaging.Rotate(img, float64(degrees), color.Transparent)
}

// emptyLayer is the degenerate 1x1 transparent layer: an invisible
// watermark, not an error.
func emptyLayer() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, 1, 1))
}
