package gender

import "fitmorph/internal/slider"

// For returns the configuration table for g. Each call builds a fresh value.
func For(g Gender) (Config, error) {
	switch g {
	case Male:
		return maleConfig(), nil
	case Female:
		return femaleConfig(), nil
	}
	return Config{}, &InvalidGenderError{Value: string(g)}
}

// MustFor is For for the two declared constants.
func MustFor(g Gender) Config {
	cfg, err := For(g)
	if err != nil {
		panic(err)
	}
	return cfg
}

func bound(v float64) *float64 { return &v }

func femaleConfig() Config {
	return Config{
		Gender: Female,
		Groups: []Group{
			{Name: "body", Entries: []Entry{
				Continuous{Slider: slider.Height, Keys: []string{"Height"}, Min: bound(0), Max: bound(1)},
				Continuous{Slider: slider.BodyWeight, Keys: []string{"Weight"}, Min: bound(0), Max: bound(1)},
				Enum{Slider: slider.BodyShape, Keys: []string{"Shape_Hourglass", "Shape_Pear", "Shape_Apple", "Shape_Rectangle"}},
			}},
			{Name: "neck", Entries: []Entry{
				Continuous{Slider: slider.NeckSize, Keys: []string{"Neck_Thick"}, Min: bound(0), Max: bound(1)},
			}},
			{Name: "shoulders", Entries: []Entry{
				Continuous{Slider: slider.ShoulderWidth, Keys: []string{"Shoulders_Wide"}, Min: bound(0), Max: bound(1)},
			}},
			{Name: "torso", Entries: []Entry{
				Continuous{Slider: slider.Breasts, Keys: []string{"Breasts_Size", "Breasts_Volume"}, Min: bound(0), Max: bound(1)},
				Enum{Slider: slider.BreastShape, Keys: []string{"Breasts_Round", "Breasts_Teardrop", "Breasts_Wide"}},
			}},
			{Name: "stomach", Entries: []Entry{
				Continuous{Slider: slider.StomachWeight, Keys: []string{"Stomach_Fat"}, Min: bound(0), Max: bound(1)},
				Continuous{Slider: slider.StomachWidth, Keys: []string{"Waist_Wide"}, Min: bound(0), Max: bound(1)},
			}},
			{Name: "hips", Entries: []Entry{
				Continuous{Slider: slider.HipSize, Keys: []string{"Hips_Wide", "Glutes_Size"}, Min: bound(0), Max: bound(1)},
			}},
			{Name: "arms", Entries: []Entry{
				Continuous{Slider: slider.ArmSize, Keys: []string{"Arms_Thick"}, Min: bound(0), Max: bound(0.9)},
			}},
			{Name: "legs", Entries: []Entry{
				Continuous{Slider: slider.LegSize, Keys: []string{"Thighs_Thick", "Calves_Thick"}, Min: bound(0), Max: bound(1)},
			}},
		},
	}
}

func maleConfig() Config {
	return Config{
		Gender: Male,
		Groups: []Group{
			{Name: "body", Entries: []Entry{
				Continuous{Slider: slider.Height, Keys: []string{"Height"}, Min: bound(0), Max: bound(1)},
				Continuous{Slider: slider.BodyWeight, Keys: []string{"Weight"}, Min: bound(0), Max: bound(1)},
			}},
			{Name: "neck", Entries: []Entry{
				Continuous{Slider: slider.NeckSize, Keys: []string{"Neck_Thick"}, Min: bound(0), Max: bound(1)},
			}},
			{Name: "shoulders", Entries: []Entry{
				Continuous{Slider: slider.ShoulderWidth, Keys: []string{"Shoulders_Wide", "Traps_Size"}, Min: bound(0), Max: bound(1)},
			}},
			{Name: "chest", Entries: []Entry{
				Continuous{Slider: slider.ChestSize, Keys: []string{"Chest_Wide", "Pecs_Size"}, Min: bound(0), Max: bound(1)},
			}},
			{Name: "stomach", Entries: []Entry{
				Continuous{Slider: slider.StomachWeight, Keys: []string{"Belly_Fat"}, Min: bound(0), Max: bound(1)},
				Continuous{Slider: slider.StomachWidth, Keys: []string{"Torso_Wide"}, Min: bound(0), Max: bound(1)},
				Enum{Slider: slider.StomachMuscular, Keys: []string{"Stomach_Soft", "Stomach_Muscular"}},
			}},
			{Name: "hips", Entries: []Entry{
				Continuous{Slider: slider.HipSize, Keys: []string{"Hips_Wide"}, Min: bound(0), Max: bound(1)},
			}},
			{Name: "arms", Entries: []Entry{
				Continuous{Slider: slider.ArmSize, Keys: []string{"Arms_Thick", "Biceps_Size"}, Min: bound(0), Max: bound(1)},
			}},
			{Name: "legs", Entries: []Entry{
				Continuous{Slider: slider.LegSize, Keys: []string{"Thighs_Thick", "Calves_Thick"}, Min: bound(0), Max: bound(1)},
			}},
		},
	}
}
