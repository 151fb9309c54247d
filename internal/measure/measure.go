// Package measure converts slider values into body measurement ranges.
//
// Each region is looked up independently. Inputs are sanitized (missing,
// NaN and infinite read as 0) and saturated to [0,1] before lookup, so an
// out-of-domain slider lands in the first or last bucket on purpose.
package measure

import (
	"fitmorph/internal/gender"
	"fitmorph/internal/slider"
)

// Region names a measured body region.
type Region string

const (
	Neck      Region = "neck"
	Shoulders Region = "shoulders"
	Bust      Region = "bust"
	Chest     Region = "chest"
	Waist     Region = "waist"
	Hips      Region = "hips"
	Arms      Region = "arms"
	Legs      Region = "legs"
)

// Unit is attached to every range.
const Unit = "cm"

// Range is a display range for one region. Min < Max.
type Range struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Unit  string  `json:"unit"`
	Label string  `json:"label,omitempty"`
}

// Set holds one range per region.
type Set map[Region]Range

// Regions returns the regions measured for g, in display order.
func Regions(g gender.Gender) []Region {
	if g == gender.Male {
		return []Region{Neck, Shoulders, Chest, Waist, Hips, Arms, Legs}
	}
	return []Region{Neck, Shoulders, Bust, Waist, Hips, Arms, Legs}
}

// Calculate dispatches to the calculator for g.
func Calculate(g gender.Gender, values slider.Values) (Set, error) {
	switch g {
	case gender.Male:
		return Male(values), nil
	case gender.Female:
		return Female(values), nil
	}
	return nil, &gender.InvalidGenderError{Value: string(g)}
}

// bucket is one rung of a ladder: values <= Upper select it.
type bucket struct {
	Upper    float64
	Min, Max float64
	Label    string
}

// ladder is ordered by ascending Upper. The last rung catches everything above.
type ladder []bucket

func (l ladder) lookup(v float64) Range {
	b := l[len(l)-1]
	for _, rung := range l {
		if v <= rung.Upper {
			b = rung
			break
		}
	}
	return Range{Min: b.Min, Max: b.Max, Unit: Unit, Label: b.Label}
}

// waistModel is the two-slider waist: weight interpolates a base range,
// width adds up to WidthMax cm on both ends.
type waistModel struct {
	BaseLo   float64
	Span     float64
	Spread   float64
	WidthMax float64
}

func (w waistModel) calc(weight, width float64) Range {
	lo := w.BaseLo + weight*w.Span + width*w.WidthMax
	return Range{Min: lo, Max: lo + w.Spread, Unit: Unit}
}
