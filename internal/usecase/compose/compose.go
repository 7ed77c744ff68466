// Package compose owns the single canonical compositing operation.
// The live preview and the batch exporter both go through Place; that
// identity is what guarantees preview/export parity.
package compose

import (
	"image"

	"watermark-studio/internal/domain"
	"watermark-studio/internal/usecase/geometry"

	"github.com/disintegration/imaging"
)

// Compose alpha-blends layer over base at (x, y) using standard "over"
// blending with the layer's own alpha. Areas outside the base canvas
// are silently clipped. base is never mutated; a new bitmap with the
// base's footprint is returned.
func Compose(base image.Image, layer image.Image, x, y int) *image.NRGBA {
	return imaging.Overlay(base, layer, image.Pt(x, y), 1.0)
}

// Place resolves the anchor base position for layer on base, applies
// the pixel offset and composes. Final position = anchor base + offset,
// unclamped.
func Place(base image.Image, layer image.Image, anchor domain.Anchor, off domain.PixelOffset) *image.NRGBA {
	bb, lb := base.Bounds(), layer.Bounds()
	x, y := geometry.ResolveAnchor(bb.Dx(), bb.Dy(), lb.Dx(), lb.Dy(), anchor)
	return Compose(base, layer, x+off.DX, y+off.DY)
}
