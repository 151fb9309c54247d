package raster

import (
	"image"
	"image/color"
	"math"
)

// ScreenVertex is a projected vertex: pixel X/Y, view depth Z, texture UV.
type ScreenVertex struct {
	X, Y, Z float64
	U, V    float64
}

// RasterizeTriangle fills one flat-shaded triangle with z-buffering.
// When tex is nil the triangle uses base. Texels with alpha < 8 are skipped.
func RasterizeTriangle(
	fb *FrameBuffer,
	p [3]ScreenVertex,
	tex *image.NRGBA,
	base color.NRGBA,
	shade float64,
	lc *LightConfig,
) {
	size := fb.Size
	minX := max(int(math.Floor(math.Min(math.Min(p[0].X, p[1].X), p[2].X))), 0)
	maxX := min(int(math.Ceil(math.Max(math.Max(p[0].X, p[1].X), p[2].X))), size-1)
	minY := max(int(math.Floor(math.Min(math.Min(p[0].Y, p[1].Y), p[2].Y))), 0)
	maxY := min(int(math.Ceil(math.Max(math.Max(p[0].Y, p[1].Y), p[2].Y))), size-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (p[1].Y-p[2].Y)*(p[0].X-p[2].X) + (p[2].X-p[1].X)*(p[0].Y-p[2].Y)
	if math.Abs(det) < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12 := p[1].Y - p[2].Y
	dx21 := p[2].X - p[1].X
	dy20 := p[2].Y - p[0].Y
	dx02 := p[0].X - p[2].X

	// Untextured triangles resolve to one color.
	var flat [3]uint8
	if tex == nil {
		flat = [3]uint8{lc.encode(base.R, shade), lc.encode(base.G, shade), lc.encode(base.B, shade)}
	}

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - p[2].Y
		row := sy * size
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - p[2].X
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*p[0].Z + w1*p[1].Z + w2*p[2].Z
			zi := row + sx
			if z <= fb.ZBuf[zi] {
				continue
			}

			r, g, b, a := flat[0], flat[1], flat[2], base.A
			if tex != nil {
				u := w0*p[0].U + w1*p[1].U + w2*p[2].U
				v := w0*p[0].V + w1*p[1].V + w2*p[2].V
				var tr, tg, tb uint8
				tr, tg, tb, a = SampleTexture(tex, u, v)
				if a < 8 {
					continue
				}
				r, g, b = lc.encode(tr, shade), lc.encode(tg, shade), lc.encode(tb, shade)
			}

			fb.ZBuf[zi] = z
			px := zi * 4
			fb.Color[px] = r
			fb.Color[px+1] = g
			fb.Color[px+2] = b
			fb.Color[px+3] = a
		}
	}
}
