package raster

import (
	"math"

	"fitmorph/internal/mathutil"
)

// LightConfig is a two-light studio setup tuned for skin previews.
type LightConfig struct {
	KeyDir   mathutil.Vec3
	FillDir  mathutil.Vec3
	HalfKey  mathutil.Vec3 // Blinn-Phong half-vector for the key light
	Ambient  float64
	Key      float64
	Fill     float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns the key-from-upper-left, fill-from-right setup.
func DefaultLightConfig() LightConfig {
	key := mathutil.Vec3{-0.5, 0.7, 0.8}.Normalize()
	fill := mathutil.Vec3{0.8, 0.1, 0.5}.Normalize()
	view := mathutil.Vec3{0, 0, 1}

	return LightConfig{
		KeyDir:   key,
		FillDir:  fill,
		HalfKey:  mathutil.Vec3{key[0] + view[0], key[1] + view[1], key[2] + view[2]}.Normalize(),
		Ambient:  0.35,
		Key:      0.95,
		Fill:     0.35,
		SpecInt:  0.12,
		SpecPow:  24,
		Exposure: 1.0,
		InvGamma: 1.0 / 2.2,
	}
}

// Shade returns the lighting scalar for a unit face normal.
// Faces are lit double-sided.
func (lc *LightConfig) Shade(n mathutil.Vec3) float64 {
	key := math.Abs(n.Dot(lc.KeyDir))
	fill := math.Abs(n.Dot(lc.FillDir))
	spec := math.Pow(math.Max(math.Abs(n.Dot(lc.HalfKey)), 0), lc.SpecPow) * lc.SpecInt
	return lc.Ambient + key*lc.Key + fill*lc.Fill + spec
}

// Precomputed sRGB-to-linear lookup table.
var srgbToLinear [256]float64

func init() {
	for i := range srgbToLinear {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// encode lights an sRGB texel, tone maps it and returns it in sRGB.
func (lc *LightConfig) encode(c uint8, shade float64) uint8 {
	lin := srgbToLinear[c] * shade * lc.Exposure
	return clamp255(math.Pow(ACESTonemap(lin), lc.InvGamma) * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
