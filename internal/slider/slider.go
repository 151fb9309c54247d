package slider

import "math"

// Semantic slider keys shared by the gender tables and the calculators.
const (
	Height          = "height" // inches, see HeightMin/HeightMax
	BodyWeight      = "body_weight"
	NeckSize        = "neck_size"
	ShoulderWidth   = "shoulder_width"
	Breasts         = "breasts"
	BreastShape     = "breast_shape"
	ChestSize       = "chest_size"
	StomachWeight   = "stomach_weight"
	StomachWidth    = "stomach_width"
	StomachMuscular = "stomach_shape_muscular"
	HipSize         = "hip_size"
	ArmSize         = "arm_size"
	LegSize         = "leg_size"
	BodyShape       = "body_shape"
)

// Height domain in inches.
const (
	HeightMin = 48.0
	HeightMax = 84.0
)

// Values is one evaluation's slider input, keyed by semantic slider key.
type Values map[string]float64

// Get returns the raw value for key. Missing, NaN and infinite values read as 0.
func (v Values) Get(key string) float64 {
	x, ok := v[key]
	if !ok || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// Normalized returns the value for key mapped onto the binder's [0,1] scale.
// Only height has a domain-specific range; everything else passes through.
// A missing height is treated as the domain minimum.
func (v Values) Normalized(key string) float64 {
	x := v.Get(key)
	if key == Height {
		if x == 0 {
			return 0
		}
		return (x - HeightMin) / (HeightMax - HeightMin)
	}
	return x
}

// Unit returns Normalized(key) saturated to [0,1].
func (v Values) Unit(key string) float64 {
	return Clamp01(v.Normalized(key))
}

// Flag reads a binary slider: true once the value rounds to 1 or more.
func (v Values) Flag(key string) bool {
	return math.Round(v.Get(key)) >= 1
}

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, x := range v {
		out[k] = x
	}
	return out
}

// Clamp01 saturates x to [0,1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
