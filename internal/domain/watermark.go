package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type WatermarkMode string

const (
	ModeText  WatermarkMode = "text"
	ModeImage WatermarkMode = "image"
)

type Anchor string

const (
	AnchorTopLeft      Anchor = "top-left"
	AnchorTopCenter    Anchor = "top-center"
	AnchorTopRight     Anchor = "top-right"
	AnchorMiddleLeft   Anchor = "middle-left"
	AnchorCenter       Anchor = "center"
	AnchorMiddleRight  Anchor = "middle-right"
	AnchorBottomLeft   Anchor = "bottom-left"
	AnchorBottomCenter Anchor = "bottom-center"
	AnchorBottomRight  Anchor = "bottom-right"
)

// Anchors lists all nine grid positions in reading order.
var Anchors = []Anchor{
	AnchorTopLeft, AnchorTopCenter, AnchorTopRight,
	AnchorMiddleLeft, AnchorCenter, AnchorMiddleRight,
	AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight,
}

// ParseAnchor maps a name to an Anchor, falling back to bottom-right
// for anything unknown.
func ParseAnchor(s string) Anchor {
	for _, a := range Anchors {
		if string(a) == s {
			return a
		}
	}
	return AnchorBottomRight
}

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseRGB parses a "R,G,B" string with components in 0-255.
func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(strings.ReplaceAll(s, " ", ""), ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("invalid color format: %q", s)
	}

	vals := make([]uint8, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid color component %q: %w", p, err)
		}
		vals[i] = uint8(clampInt(v, 0, 255))
	}

	return RGB{R: vals[0], G: vals[1], B: vals[2]}, nil
}

type TextWatermark struct {
	Content  string  `json:"content"`
	FontSize int     `json:"font_size" validate:"min=6,max=400"`
	Color    RGB     `json:"color"`
	Opacity  float64 `json:"opacity" validate:"min=0,max=1"`
}

type ImageWatermark struct {
	SourcePath   string  `json:"source_path"`
	ScalePercent int     `json:"scale_percent" validate:"min=1,max=400"`
	Opacity      float64 `json:"opacity" validate:"min=0,max=1"`
}

// WatermarkSpec is a tagged union: Mode selects which payload is active.
// Anchor, Offset and Rotation live on the shared envelope so switching
// modes keeps the positioning intent intact.
type WatermarkSpec struct {
	Mode     WatermarkMode  `json:"mode" validate:"oneof=text image"`
	Text     TextWatermark  `json:"text"`
	Image    ImageWatermark `json:"image"`
	Anchor   Anchor         `json:"anchor"`
	Offset   PixelOffset    `json:"offset"`
	Rotation int            `json:"rotation" validate:"min=-180,max=180"`
}

// DefaultSpec returns the spec a fresh session starts with.
func DefaultSpec() WatermarkSpec {
	return WatermarkSpec{
		Mode: ModeText,
		Text: TextWatermark{
			Content:  "Sample watermark",
			FontSize: 32,
			Color:    RGB{R: 255, G: 255, B: 255},
			Opacity:  0.5,
		},
		Image: ImageWatermark{
			ScalePercent: 30,
			Opacity:      0.5,
		},
		Anchor: AnchorBottomRight,
	}
}

// PixelOffset is a placement offset in pixels, meaningful only against
// the canvas it was captured on.
type PixelOffset struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// RatioOffset is a placement offset expressed as a fraction of canvas
// dimensions, so the same visual position can be replayed at any
// resolution.
type RatioOffset struct {
	RX float64 `json:"rx"`
	RY float64 `json:"ry"`
}

const (
	MinFontSize = 6
	MaxFontSize = 400
)

// ClampFontSize bounds a pixel font size to the supported range.
func ClampFontSize(size int) int {
	return clampInt(size, MinFontSize, MaxFontSize)
}

// ClampRotation bounds rotation degrees to [-180, 180].
func ClampRotation(deg int) int {
	return clampInt(deg, -180, 180)
}

// ClampOpacity bounds opacity to [0, 1].
func ClampOpacity(o float64) float64 {
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
