// Package report formats influences and measurements for terminal output.
package report

import (
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"fitmorph/internal/gender"
	"fitmorph/internal/measure"
	"fitmorph/internal/shapekey"
)

// Measurements writes one line per region in display order, e.g.
// "Hips        85.0 – 90.0 cm".
func Measurements(w io.Writer, tag language.Tag, g gender.Gender, set measure.Set) error {
	p := message.NewPrinter(tag)
	title := cases.Title(tag)
	for _, region := range measure.Regions(g) {
		r, ok := set[region]
		if !ok {
			continue
		}
		label := ""
		if r.Label != "" {
			label = " (" + r.Label + ")"
		}
		if _, err := p.Fprintf(w, "%-10s %6.1f – %6.1f %s%s\n", title.String(string(region)), r.Min, r.Max, r.Unit, label); err != nil {
			return err
		}
	}
	return nil
}

// Influences writes every target of cfg with its influence, in declaration
// order, grouped under the config's group names.
func Influences(w io.Writer, tag language.Tag, cfg gender.Config, inf shapekey.Influences) error {
	p := message.NewPrinter(tag)
	title := cases.Title(tag)
	seen := make(map[string]bool)
	for _, g := range cfg.Groups {
		if _, err := p.Fprintf(w, "%s\n", title.String(g.Name)); err != nil {
			return err
		}
		for _, e := range g.Entries {
			for _, k := range e.TargetKeys() {
				if seen[k] {
					continue
				}
				seen[k] = true
				if _, err := p.Fprintf(w, "  %-20s %.3f\n", k, inf[k]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
