package layer

import (
	"image"
	"image/color"

	"watermark-studio/internal/domain"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RenderText renders the text variant into a transparent bitmap sized
// exactly to the glyph run: advance width by line height, measured on
// the shaping face. Opacity is baked into the draw color so the alpha
// channel carries coverage*opacity in a single blend; applying opacity
// as a later multiply would double-blend the antialiased edges.
func (r *Renderer) RenderText(t domain.TextWatermark) (*image.NRGBA, error) {
	if t.Content == "" {
		return emptyLayer(), nil
	}

	// truetype faces are not safe for concurrent use; measurement and
	// drawing stay under the renderer lock.
	r.mu.Lock()
	defer r.mu.Unlock()

	face := r.face(domain.ClampFontSize(t.FontSize))

	d := &font.Drawer{Face: face}
	advance := d.MeasureString(t.Content)

	w := advance.Ceil()
	if w < 1 {
		// Zero-width measurement degenerates to an invisible layer.
		return emptyLayer(), nil
	}

	metrics := face.Metrics()
	h := metrics.Height.Ceil()
	if h < 1 {
		h = 1
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	alpha := uint8(255 * domain.ClampOpacity(t.Opacity))
	d.Dst = img
	d.Src = image.NewUniform(color.NRGBA{R: t.Color.R, G: t.Color.G, B: t.Color.B, A: alpha})
	d.Dot = fixed.P(0, metrics.Ascent.Ceil())
	d.DrawString(t.Content)

	return img, nil
}

// face returns a cached font.Face for the given pixel size. At 72 DPI
// the point size equals the pixel size.
func (r *Renderer) face(size int) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.font, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[size] = f
	return f
}
