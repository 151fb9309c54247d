package raster

import "image"

// SampleTexture performs bilinear filtering. U wraps around the lathe seam,
// V clamps at the top and bottom rows.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, 0, 0, 0
	}

	u -= float64(int(u))
	if u < 0 {
		u++
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0, y0 := int(fx), int(fy)
	x1 := (x0 + 1) % w
	y1 := min(y0+1, h-1)
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	texel := func(x, y int) []uint8 {
		i := y*tex.Stride + x*4
		return tex.Pix[i : i+4]
	}
	p00, p10, p01, p11 := texel(x0, y0), texel(x1, y0), texel(x0, y1), texel(x1, y1)

	var out [4]uint8
	for c := 0; c < 4; c++ {
		top := float64(p00[c])*(1-dx) + float64(p10[c])*dx
		bot := float64(p01[c])*(1-dx) + float64(p11[c])*dx
		out[c] = uint8(top*(1-dy) + bot*dy + 0.5)
	}
	return out[0], out[1], out[2], out[3]
}
