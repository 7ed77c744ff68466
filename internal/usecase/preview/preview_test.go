package preview

import (
	"image/color"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"watermark-studio/internal/domain"
	"watermark-studio/internal/usecase/layer"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func newComposer(t *testing.T) *Composer {
	t.Helper()

	renderer, err := layer.NewRenderer()
	require.NoError(t, err)
	return NewComposer(renderer, 900, 700)
}

func TestScaleCap(t *testing.T) {
	tests := []struct {
		name  string
		srcW  int
		srcH  int
		wantW int
		wantH int
	}{
		{"oversized landscape scales down", 1800, 1400, 900, 700},
		{"oversized portrait scales down uniformly", 1000, 2800, 250, 700},
		{"small image is never upscaled", 300, 200, 300, 200},
		{"exactly at cap is untouched", 900, 700, 900, 700},
	}

	c := newComposer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := imaging.New(tt.srcW, tt.srcH, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
			got := c.Scale(src)
			require.Equal(t, tt.wantW, got.Bounds().Dx())
			require.Equal(t, tt.wantH, got.Bounds().Dy())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	c := newComposer(t)

	_, err := c.Load(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

func TestRenderReportsCanvasSize(t *testing.T) {
	c := newComposer(t)
	base := imaging.New(400, 300, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	spec := domain.DefaultSpec()
	frame, err := c.Render(spec, base)
	require.NoError(t, err)
	require.Equal(t, 400, frame.CanvasW)
	require.Equal(t, 300, frame.CanvasH)
	require.Equal(t, base.Bounds(), frame.Image.Bounds())
}

func TestCoalescer(t *testing.T) {
	var runs atomic.Int32
	c := NewCoalescer(50*time.Millisecond, func() { runs.Add(1) })
	defer c.Stop()

	for i := 0; i < 10; i++ {
		c.Trigger()
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)

	// The burst collapsed into a single recompute.
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int32(1), runs.Load())
}

func TestCoalescerStop(t *testing.T) {
	var runs atomic.Int32
	c := NewCoalescer(30*time.Millisecond, func() { runs.Add(1) })

	c.Trigger()
	c.Stop()

	time.Sleep(100 * time.Millisecond)
	require.Zero(t, runs.Load())
}
