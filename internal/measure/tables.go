package measure

import "fitmorph/internal/slider"

// Female ladders.
var (
	femaleNeck = ladder{
		{Upper: 0.2, Min: 30, Max: 32},
		{Upper: 0.4, Min: 32, Max: 34},
		{Upper: 0.6, Min: 34, Max: 36},
		{Upper: 0.8, Min: 36, Max: 38},
		{Upper: 1, Min: 38, Max: 41},
	}
	femaleShoulders = ladder{
		{Upper: 0.2, Min: 36, Max: 38},
		{Upper: 0.4, Min: 38, Max: 40},
		{Upper: 0.6, Min: 40, Max: 42},
		{Upper: 0.8, Min: 42, Max: 44},
		{Upper: 1, Min: 44, Max: 47},
	}
	// Cup sizes, nine rungs.
	femaleBust = ladder{
		{Upper: 0.1, Min: 70, Max: 75, Label: "A"},
		{Upper: 0.2, Min: 75, Max: 80, Label: "B"},
		{Upper: 0.3, Min: 80, Max: 85, Label: "C"},
		{Upper: 0.4, Min: 85, Max: 88, Label: "D"},
		{Upper: 0.45, Min: 88, Max: 90, Label: "DD"},
		{Upper: 0.5, Min: 90, Max: 95, Label: "DDD/E"},
		{Upper: 0.65, Min: 95, Max: 100, Label: "F"},
		{Upper: 0.8, Min: 100, Max: 105, Label: "G"},
		{Upper: 1, Min: 105, Max: 110, Label: "H"},
	}
	femaleWaist = waistModel{BaseLo: 60, Span: 30, Spread: 5, WidthMax: 10}
	femaleHips  = ladder{
		{Upper: 0.1, Min: 85, Max: 90},
		{Upper: 0.25, Min: 90, Max: 95},
		{Upper: 0.4, Min: 95, Max: 100},
		{Upper: 0.55, Min: 100, Max: 105},
		{Upper: 0.7, Min: 105, Max: 110},
		{Upper: 0.85, Min: 110, Max: 115},
		{Upper: 1, Min: 115, Max: 122},
	}
	femaleArms = ladder{
		{Upper: 0.2, Min: 24, Max: 26},
		{Upper: 0.4, Min: 26, Max: 28},
		{Upper: 0.6, Min: 28, Max: 30},
		{Upper: 0.8, Min: 30, Max: 33},
		{Upper: 1, Min: 33, Max: 37},
	}
	femaleLegs = ladder{
		{Upper: 0.2, Min: 48, Max: 52},
		{Upper: 0.4, Min: 52, Max: 56},
		{Upper: 0.6, Min: 56, Max: 60},
		{Upper: 0.8, Min: 60, Max: 64},
		{Upper: 1, Min: 64, Max: 70},
	}
)

// Male ladders.
var (
	maleNeck = ladder{
		{Upper: 0.2, Min: 35, Max: 37},
		{Upper: 0.4, Min: 37, Max: 39},
		{Upper: 0.6, Min: 39, Max: 41},
		{Upper: 0.8, Min: 41, Max: 43},
		{Upper: 1, Min: 43, Max: 46},
	}
	maleShoulders = ladder{
		{Upper: 0.2, Min: 42, Max: 44},
		{Upper: 0.4, Min: 44, Max: 46},
		{Upper: 0.6, Min: 46, Max: 48},
		{Upper: 0.8, Min: 48, Max: 50},
		{Upper: 1, Min: 50, Max: 54},
	}
	// Chest by torso width, soft and muscular builds.
	maleChestSoft = ladder{
		{Upper: 0.2, Min: 80, Max: 85},
		{Upper: 0.4, Min: 85, Max: 90},
		{Upper: 0.6, Min: 90, Max: 95},
		{Upper: 0.8, Min: 95, Max: 100},
		{Upper: 1, Min: 100, Max: 108},
	}
	maleChestMuscular = ladder{
		{Upper: 0.2, Min: 85, Max: 90},
		{Upper: 0.4, Min: 90, Max: 95},
		{Upper: 0.6, Min: 95, Max: 100},
		{Upper: 0.8, Min: 100, Max: 105},
		{Upper: 1, Min: 105, Max: 112},
	}
	maleWaist = waistModel{BaseLo: 72, Span: 35, Spread: 5, WidthMax: 10}
	maleHips  = ladder{
		{Upper: 0.2, Min: 88, Max: 93},
		{Upper: 0.4, Min: 93, Max: 98},
		{Upper: 0.6, Min: 98, Max: 103},
		{Upper: 0.8, Min: 103, Max: 108},
		{Upper: 1, Min: 108, Max: 115},
	}
	maleArms = ladder{
		{Upper: 0.2, Min: 27, Max: 29},
		{Upper: 0.4, Min: 29, Max: 31},
		{Upper: 0.6, Min: 31, Max: 34},
		{Upper: 0.8, Min: 34, Max: 37},
		{Upper: 1, Min: 37, Max: 42},
	}
	maleLegs = ladder{
		{Upper: 0.2, Min: 50, Max: 54},
		{Upper: 0.4, Min: 54, Max: 58},
		{Upper: 0.6, Min: 58, Max: 62},
		{Upper: 0.8, Min: 62, Max: 66},
		{Upper: 1, Min: 66, Max: 72},
	}
)

// Female computes the female measurement set.
func Female(values slider.Values) Set {
	return Set{
		Neck:      femaleNeck.lookup(values.Unit(slider.NeckSize)),
		Shoulders: femaleShoulders.lookup(values.Unit(slider.ShoulderWidth)),
		Bust:      femaleBust.lookup(values.Unit(slider.Breasts)),
		Waist:     femaleWaist.calc(values.Unit(slider.StomachWeight), values.Unit(slider.StomachWidth)),
		Hips:      femaleHips.lookup(values.Unit(slider.HipSize)),
		Arms:      femaleArms.lookup(values.Unit(slider.ArmSize)),
		Legs:      femaleLegs.lookup(values.Unit(slider.LegSize)),
	}
}

// Male computes the male measurement set. Chest follows stomach_width,
// switching ladders on the muscular flag.
func Male(values slider.Values) Set {
	chest := maleChestSoft
	if values.Flag(slider.StomachMuscular) {
		chest = maleChestMuscular
	}
	return Set{
		Neck:      maleNeck.lookup(values.Unit(slider.NeckSize)),
		Shoulders: maleShoulders.lookup(values.Unit(slider.ShoulderWidth)),
		Chest:     chest.lookup(values.Unit(slider.StomachWidth)),
		Waist:     maleWaist.calc(values.Unit(slider.StomachWeight), values.Unit(slider.StomachWidth)),
		Hips:      maleHips.lookup(values.Unit(slider.HipSize)),
		Arms:      maleArms.lookup(values.Unit(slider.ArmSize)),
		Legs:      maleLegs.lookup(values.Unit(slider.LegSize)),
	}
}
