package gender

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Gender
		ok   bool
	}{
		{"male", Male, true},
		{"female", Female, true},
		{"  Female ", Female, true},
		{"MALE", Male, true},
		{"", "", false},
		{"other", "", false},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("Parse(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
			continue
		}
		var ige *InvalidGenderError
		if !errors.As(err, &ige) {
			t.Errorf("Parse(%q) error = %v, want *InvalidGenderError", tt.in, err)
		} else if ige.Value != tt.in {
			t.Errorf("InvalidGenderError.Value = %q, want %q", ige.Value, tt.in)
		}
	}
}

func TestForIsTotalAndDeterministic(t *testing.T) {
	for _, g := range []Gender{Male, Female} {
		a, err := For(g)
		if err != nil {
			t.Fatalf("For(%s): %v", g, err)
		}
		b, _ := For(g)
		if a.Gender != g {
			t.Errorf("For(%s).Gender = %s", g, a.Gender)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("For(%s) not deterministic", g)
		}
		if len(a.Targets()) == 0 || len(a.Sliders()) == 0 {
			t.Errorf("For(%s) has no targets or sliders", g)
		}
	}
}

func TestForRejectsUnknown(t *testing.T) {
	_, err := For(Gender("x"))
	var ige *InvalidGenderError
	if !errors.As(err, &ige) {
		t.Fatalf("For(x) error = %v, want *InvalidGenderError", err)
	}
}

func TestBuiltInTablesHaveNoDuplicateTargets(t *testing.T) {
	for _, g := range []Gender{Male, Female} {
		if d := MustFor(g).Duplicates(); len(d) != 0 {
			t.Errorf("%s: targets claimed twice: %v", g, d)
		}
	}
}

func TestDuplicatesAndTargets(t *testing.T) {
	cfg := Config{Groups: []Group{
		{Name: "a", Entries: []Entry{
			Continuous{Slider: "s1", Keys: []string{"X", "Y", "X"}},
			Enum{Slider: "s2", Keys: []string{"Z", "Y"}},
		}},
		{Name: "b", Entries: []Entry{
			Continuous{Slider: "s1", Keys: []string{"W"}},
		}},
	}}

	if got, want := cfg.Targets(), []string{"X", "Y", "Z", "W"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Targets() = %v, want %v", got, want)
	}
	if got, want := cfg.Duplicates(), []string{"Y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Duplicates() = %v, want %v", got, want)
	}
	if got, want := cfg.Sliders(), []string{"s1", "s2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sliders() = %v, want %v", got, want)
	}
}

func TestMaleHasMuscularEnum(t *testing.T) {
	for _, g := range MustFor(Male).Groups {
		for _, e := range g.Entries {
			if en, ok := e.(Enum); ok && en.Slider == "stomach_shape_muscular" {
				if len(en.Keys) != 2 {
					t.Errorf("muscular enum keys = %v", en.Keys)
				}
				return
			}
		}
	}
	t.Error("male config lacks the stomach_shape_muscular enum")
}
