package measure

import (
	"errors"
	"math"
	"testing"

	"fitmorph/internal/gender"
	"fitmorph/internal/slider"
)

func TestScenarios(t *testing.T) {
	tests := []struct {
		name   string
		g      gender.Gender
		values slider.Values
		region Region
		want   Range
	}{
		{"female hips at zero", gender.Female, slider.Values{slider.HipSize: 0}, Hips, Range{Min: 85, Max: 90, Unit: "cm"}},
		{"female bust boundary", gender.Female, slider.Values{slider.Breasts: 0.5}, Bust, Range{Min: 90, Max: 95, Unit: "cm", Label: "DDD/E"}},
		{"male muscular chest", gender.Male, slider.Values{slider.StomachWidth: 0.8, slider.StomachMuscular: 1}, Chest, Range{Min: 100, Max: 105, Unit: "cm"}},
		{"male soft chest", gender.Male, slider.Values{slider.StomachWidth: 0.8}, Chest, Range{Min: 95, Max: 100, Unit: "cm"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Calculate(tt.g, tt.values)
			if err != nil {
				t.Fatal(err)
			}
			if got := set[tt.region]; got != tt.want {
				t.Errorf("%s = %+v, want %+v", tt.region, got, tt.want)
			}
		})
	}
}

func TestRegionsCovered(t *testing.T) {
	for _, g := range []gender.Gender{gender.Male, gender.Female} {
		set, _ := Calculate(g, slider.Values{})
		regions := Regions(g)
		if len(set) != len(regions) {
			t.Errorf("%s: %d ranges, want %d", g, len(set), len(regions))
		}
		for _, r := range regions {
			rng, ok := set[r]
			if !ok {
				t.Errorf("%s: missing %s", g, r)
				continue
			}
			if !(rng.Min < rng.Max) || rng.Unit != Unit {
				t.Errorf("%s/%s: bad range %+v", g, r, rng)
			}
		}
	}
}

func TestBoundaryBelongsToLowerBucket(t *testing.T) {
	below := Female(slider.Values{slider.HipSize: 0.1})[Hips]
	above := Female(slider.Values{slider.HipSize: 0.1000001})[Hips]
	if below.Min != 85 {
		t.Errorf("hip 0.1 -> %+v, want the 85 bucket", below)
	}
	if above.Min != 90 {
		t.Errorf("hip just above 0.1 -> %+v, want the 90 bucket", above)
	}
}

func TestLaddersMonotonic(t *testing.T) {
	ladders := map[string]ladder{
		"femaleNeck": femaleNeck, "femaleShoulders": femaleShoulders, "femaleBust": femaleBust,
		"femaleHips": femaleHips, "femaleArms": femaleArms, "femaleLegs": femaleLegs,
		"maleNeck": maleNeck, "maleShoulders": maleShoulders, "maleChestSoft": maleChestSoft,
		"maleChestMuscular": maleChestMuscular, "maleHips": maleHips, "maleArms": maleArms, "maleLegs": maleLegs,
	}
	for name, l := range ladders {
		prev := math.Inf(-1)
		for x := 0.0; x <= 1.0001; x += 0.01 {
			r := l.lookup(x)
			if r.Min < prev {
				t.Errorf("%s: min dropped to %v at %v", name, r.Min, x)
			}
			if !(r.Min < r.Max) {
				t.Errorf("%s: empty range %+v at %v", name, r, x)
			}
			prev = r.Min
		}
		for i := 1; i < len(l); i++ {
			if l[i].Upper <= l[i-1].Upper {
				t.Errorf("%s: thresholds not ascending at rung %d", name, i)
			}
		}
	}
}

func TestBustHasNineCups(t *testing.T) {
	if len(femaleBust) != 9 {
		t.Fatalf("bust ladder has %d rungs, want 9", len(femaleBust))
	}
	for _, b := range femaleBust {
		if b.Label == "" {
			t.Errorf("rung %+v has no cup label", b)
		}
	}
}

func TestWaistCombinesWeightAndWidth(t *testing.T) {
	base := Female(slider.Values{})[Waist]
	if base.Min != 60 || base.Max != 65 {
		t.Errorf("base waist = %+v, want 60-65", base)
	}
	heavy := Female(slider.Values{slider.StomachWeight: 1})[Waist]
	if heavy.Min != 90 {
		t.Errorf("weight 1 waist min = %v, want 90", heavy.Min)
	}
	wide := Female(slider.Values{slider.StomachWeight: 0.5, slider.StomachWidth: 1})[Waist]
	if wide.Min != 85 || wide.Max != 90 {
		t.Errorf("weight .5 width 1 waist = %+v, want 85-90", wide)
	}
	male := Male(slider.Values{slider.StomachWeight: 0.2, slider.StomachWidth: 0.5})[Waist]
	if math.Abs(male.Min-84) > 1e-9 || math.Abs(male.Max-89) > 1e-9 {
		t.Errorf("male waist = %+v, want 84-89", male)
	}
}

func TestOutOfDomainSaturates(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 85}, {7, 115}, {math.NaN(), 85}, {math.Inf(1), 85},
	}
	for _, tt := range tests {
		if got := Female(slider.Values{slider.HipSize: tt.in})[Hips].Min; got != tt.want {
			t.Errorf("hip_size=%v -> min %v, want %v", tt.in, got, tt.want)
		}
	}
	if w := Female(slider.Values{slider.StomachWeight: 4})[Waist]; w.Min != 90 {
		t.Errorf("waist weight 4 -> %+v, want saturated at 90", w)
	}
}

func TestCalculateInvalidGender(t *testing.T) {
	_, err := Calculate(gender.Gender("?"), slider.Values{})
	var ige *gender.InvalidGenderError
	if !errors.As(err, &ige) {
		t.Fatalf("err = %v, want *InvalidGenderError", err)
	}
}
