package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Size  int       // square, Size×Size
	Color []uint8   // RGBA interleaved
	ZBuf  []float64 // larger is nearer, initialized to -inf
}

// NewFrameBuffer allocates a transparent color buffer and an empty z-buffer.
func NewFrameBuffer(size int) *FrameBuffer {
	n := size * size
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Size:  size,
		Color: make([]uint8, n*4),
		ZBuf:  zbuf,
	}
}

// Image copies the color buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Size, fb.Size))
	copy(img.Pix, fb.Color)
	return img
}

// Coverage returns the fraction of pixels written at least once.
func (fb *FrameBuffer) Coverage() float64 {
	if len(fb.ZBuf) == 0 {
		return 0
	}
	hit := 0
	for _, z := range fb.ZBuf {
		if !math.IsInf(z, -1) {
			hit++
		}
	}
	return float64(hit) / float64(len(fb.ZBuf))
}
