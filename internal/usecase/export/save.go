package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"watermark-studio/internal/domain"

	"github.com/disintegration/imaging"
)

// applyResize scales the composed output per the resize settings.
// Aspect ratio is always preserved; each axis stays at least 1px.
func applyResize(img *image.NRGBA, r *domain.ResizeSpec) *image.NRGBA {
	if r == nil || r.Value <= 0 {
		return img
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	var tw, th int
	switch r.Mode {
	case domain.ResizeWidth:
		tw = r.Value
		th = scaled(h, float64(r.Value)/float64(w))
	case domain.ResizeHeight:
		th = r.Value
		tw = scaled(w, float64(r.Value)/float64(h))
	case domain.ResizePercent:
		ratio := float64(r.Value) / 100
		tw = scaled(w, ratio)
		th = scaled(h, ratio)
	default:
		return img
	}

	return imaging.Resize(img, tw, th, imaging.Lanczos)
}

func scaled(dim int, ratio float64) int {
	v := int(float64(dim) * ratio)
	if v < 1 {
		return 1
	}
	return v
}

// save encodes the image into the already-created output file. PNG
// keeps the alpha channel; JPEG flattens to RGB, which is safe because
// composited pixels already reflect the blending.
func save(f *os.File, img image.Image, settings domain.ExportSettings) error {
	var err error
	switch settings.Format {
	case domain.FormatPNG:
		err = png.Encode(f, img)
	default:
		err = jpeg.Encode(f, flatten(img), &jpeg.Options{Quality: settings.JPEGQuality})
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to encode output file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// flatten drops the alpha channel for JPEG encoding, keeping the color
// channels as-is. Compositing through draw.Src would premultiply straight
// alpha and darken semi-transparent pixels.
func flatten(img image.Image) *image.RGBA {
	src := imaging.Clone(img)
	out := image.NewRGBA(src.Bounds())
	for i := 0; i < len(src.Pix); i += 4 {
		out.Pix[i+0] = src.Pix[i+0]
		out.Pix[i+1] = src.Pix[i+1]
		out.Pix[i+2] = src.Pix[i+2]
		out.Pix[i+3] = 0xff
	}
	return out
}
