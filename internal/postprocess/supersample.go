package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled render to targetSize×targetSize.
// Filtering happens on premultiplied alpha so transparent edges don't halo.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	return unpremultiply(dst)
}

func unpremultiply(src *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		a := src.Pix[i+3]
		out.Pix[i+3] = a
		if a <= 1 {
			continue
		}
		inv := 255.0 / float64(a)
		out.Pix[i] = clamp8(float64(src.Pix[i]) * inv)
		out.Pix[i+1] = clamp8(float64(src.Pix[i+1]) * inv)
		out.Pix[i+2] = clamp8(float64(src.Pix[i+2]) * inv)
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
