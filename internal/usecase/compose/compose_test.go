package compose

import (
	"image"
	"image/color"
	"testing"

	"watermark-studio/internal/domain"
	"watermark-studio/internal/usecase/layer"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func solidBase(w, h int) *image.NRGBA {
	return imaging.New(w, h, color.NRGBA{R: 40, G: 80, B: 120, A: 255})
}

func solidLayer(w, h int, a uint8) *image.NRGBA {
	return imaging.New(w, h, color.NRGBA{R: 255, G: 0, B: 0, A: a})
}

func TestComposeDoesNotMutateBase(t *testing.T) {
	base := solidBase(50, 50)
	before := append([]uint8(nil), base.Pix...)

	out := Compose(base, solidLayer(10, 10, 255), 20, 20)

	require.Equal(t, before, base.Pix)
	require.NotEqual(t, base.Pix, out.Pix)
	require.Equal(t, base.Bounds(), out.Bounds())
}

func TestComposeClipsOffCanvas(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"partially off top-left", -5, -5},
		{"partially off bottom-right", 45, 45},
		{"fully off canvas", 500, 500},
		{"fully off negative", -100, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := solidBase(50, 50)
			out := Compose(base, solidLayer(10, 10, 255), tt.x, tt.y)
			require.Equal(t, base.Bounds(), out.Bounds())
		})
	}
}

func TestComposeOverBlend(t *testing.T) {
	base := solidBase(20, 20)

	out := Compose(base, solidLayer(20, 20, 255), 0, 0)
	r, _, _, _ := out.At(10, 10).RGBA()
	require.Equal(t, uint32(0xffff), r, "opaque layer replaces base pixels")

	untouched := Compose(base, solidLayer(5, 5, 0), 0, 0)
	require.Equal(t, base.Pix, untouched.Pix, "zero-alpha layer leaves base identical")
}

func TestPlaceZeroOpacityTextIsIdentity(t *testing.T) {
	renderer, err := layer.NewRenderer()
	require.NoError(t, err)

	lyr, err := renderer.RenderText(domain.TextWatermark{
		Content:  "invisible",
		FontSize: 32,
		Color:    domain.RGB{R: 255, G: 255, B: 255},
		Opacity:  0,
	})
	require.NoError(t, err)

	base := solidBase(200, 200)
	out := Place(base, lyr, domain.AnchorCenter, domain.PixelOffset{})
	require.Equal(t, base.Pix, out.Pix)
}

func TestPlaceAppliesOffset(t *testing.T) {
	base := solidBase(100, 100)
	lyr := solidLayer(10, 10, 255)

	centered := Place(base, lyr, domain.AnchorTopLeft, domain.PixelOffset{})
	shifted := Place(base, lyr, domain.AnchorTopLeft, domain.PixelOffset{DX: 30, DY: 0})

	// Margin puts the layer at (16,16); the offset moves it to (46,16).
	rC, _, _, _ := centered.At(17, 17).RGBA()
	require.Equal(t, uint32(0xffff), rC)

	rS, _, _, _ := shifted.At(17, 17).RGBA()
	require.NotEqual(t, uint32(0xffff), rS)
	rS2, _, _, _ := shifted.At(47, 17).RGBA()
	require.Equal(t, uint32(0xffff), rS2)
}
