package report

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"fitmorph/internal/gender"
	"fitmorph/internal/measure"
	"fitmorph/internal/shapekey"
	"fitmorph/internal/slider"
)

func TestMeasurementsFemale(t *testing.T) {
	var buf bytes.Buffer
	set := measure.Female(slider.Values{slider.Breasts: 0.5})
	if err := Measurements(&buf, language.English, gender.Female, set); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Neck") {
		t.Errorf("first line %q, want Neck first", lines[0])
	}
	if !strings.Contains(out, "Bust") || !strings.Contains(out, "90.0") || !strings.Contains(out, "(DDD/E)") {
		t.Errorf("bust line missing or wrong:\n%s", out)
	}
	if strings.Contains(out, "Chest") {
		t.Errorf("female report should not list chest:\n%s", out)
	}
}

func TestInfluencesListsEveryTargetOnce(t *testing.T) {
	cfg := gender.MustFor(gender.Male)
	inf := shapekey.Binder{}.Compute(cfg, slider.Values{slider.StomachMuscular: 1})

	var buf bytes.Buffer
	if err := Influences(&buf, language.English, cfg, inf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, name := range cfg.Targets() {
		if strings.Count(out, " "+name+" ") != 1 {
			t.Errorf("target %s should appear exactly once:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "Stomach\n") {
		t.Errorf("group header missing:\n%s", out)
	}
}
