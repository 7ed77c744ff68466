package layer

import (
	"fmt"
	"image"

	"watermark-studio/internal/domain"

	"github.com/disintegration/imaging"
)

// RenderImage renders the image variant: the source bitmap scaled so
// its width equals ScalePercent/100 of the base image width, height
// proportional, at least 1px per axis, with the alpha channel
// multiplied by opacity.
func (r *Renderer) RenderImage(iw domain.ImageWatermark, baseWidth int) (*image.NRGBA, error) {
	src, err := r.mark(iw.SourcePath)
	if err != nil {
		return nil, err
	}

	targetW := int(float64(baseWidth) * float64(iw.ScalePercent) / 100)
	if targetW < 1 {
		targetW = 1
	}

	scaled := imaging.Resize(src, targetW, 0, imaging.Lanczos)
	if scaled.Bounds().Dy() < 1 {
		scaled = imaging.Resize(src, targetW, 1, imaging.Lanczos)
	}

	if opacity := domain.ClampOpacity(iw.Opacity); opacity < 1 {
		for i := 3; i < len(scaled.Pix); i += 4 {
			scaled.Pix[i] = uint8(float64(scaled.Pix[i]) * opacity)
		}
	}

	return scaled, nil
}

// mark loads a watermark source bitmap through the path-keyed cache.
func (r *Renderer) mark(path string) (image.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if img, ok := r.marks[path]; ok {
		return img, nil
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load watermark image %q: %w", path, err)
	}
	r.marks[path] = img
	return img, nil
}
