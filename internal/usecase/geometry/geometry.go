// Package geometry computes watermark placement: anchor base positions
// on a canvas and the translation between pixel and ratio offsets.
package geometry

import (
	"math"

	"watermark-studio/internal/domain"
)

// Margin is the fixed inset from canvas edges for non-centered axes.
const Margin = 16

// ResolveAnchor returns the top-left base position for a layer of size
// (layerW, layerH) placed on a canvas of size (canvasW, canvasH) at the
// given anchor. Unknown anchors fall back to bottom-right. The result
// is not clamped: the final draw position may legally run off-canvas,
// compositing clips at pixel level.
func ResolveAnchor(canvasW, canvasH, layerW, layerH int, anchor domain.Anchor) (int, int) {
	left := Margin
	right := canvasW - layerW - Margin
	centerX := (canvasW - layerW) / 2

	top := Margin
	bottom := canvasH - layerH - Margin
	centerY := (canvasH - layerH) / 2

	switch anchor {
	case domain.AnchorTopLeft:
		return left, top
	case domain.AnchorTopCenter:
		return centerX, top
	case domain.AnchorTopRight:
		return right, top
	case domain.AnchorMiddleLeft:
		return left, centerY
	case domain.AnchorCenter:
		return centerX, centerY
	case domain.AnchorMiddleRight:
		return right, centerY
	case domain.AnchorBottomLeft:
		return left, bottom
	case domain.AnchorBottomCenter:
		return centerX, bottom
	default:
		return right, bottom
	}
}

// ToRatio converts a pixel offset captured against a canvas of the
// given size into a resolution-independent ratio offset.
func ToRatio(off domain.PixelOffset, canvasW, canvasH int) domain.RatioOffset {
	if canvasW <= 0 || canvasH <= 0 {
		return domain.RatioOffset{}
	}
	return domain.RatioOffset{
		RX: float64(off.DX) / float64(canvasW),
		RY: float64(off.DY) / float64(canvasH),
	}
}

// ToPixels replays a ratio offset against a new canvas size. Rounding
// to nearest keeps the round-trip exact when the canvas is unchanged.
func ToPixels(off domain.RatioOffset, canvasW, canvasH int) domain.PixelOffset {
	return domain.PixelOffset{
		DX: int(math.Round(off.RX * float64(canvasW))),
		DY: int(math.Round(off.RY * float64(canvasH))),
	}
}
