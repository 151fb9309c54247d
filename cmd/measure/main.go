package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/text/language"

	"fitmorph/internal/gender"
	"fitmorph/internal/measure"
	"fitmorph/internal/morph"
	"fitmorph/internal/report"
	"fitmorph/internal/shapekey"
	"fitmorph/internal/slider"
)

// assignments collects repeated -set key=value flags.
type assignments []string

func (a *assignments) String() string { return strings.Join(*a, ",") }

func (a *assignments) Set(s string) error {
	*a = append(*a, s)
	return nil
}

func main() {
	genderFlag := flag.String("gender", "female", "Body gender: male or female")
	presetsFile := flag.String("presets", "", "Presets JSON file to read a starting state from")
	name := flag.String("name", "", "Preset name to load (requires -presets)")
	model := flag.String("model", "", "Bind against this .bmm model instead of the mannequin")
	lang := flag.String("lang", "en", "Report language tag")
	verbose := flag.Bool("v", false, "Trace every computed influence")
	var sets assignments
	flag.Var(&sets, "set", "Slider assignment key=value (repeatable)")

	flag.Parse()

	values := slider.Values{}
	g, err := gender.Parse(*genderFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *presetsFile != "" {
		presets, err := slider.LoadPresets(*presetsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading presets: %v\n", err)
			os.Exit(1)
		}
		found := false
		for _, p := range presets {
			if p.Name != *name {
				continue
			}
			found = true
			values = p.Sliders.Clone()
			if p.Gender != "" {
				if g, err = gender.Parse(p.Gender); err != nil {
					fmt.Fprintf(os.Stderr, "Error: preset %s: %v\n", p.Name, err)
					os.Exit(1)
				}
			}
			break
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: preset %q not found in %s\n", *name, *presetsFile)
			os.Exit(1)
		}
	}

	for _, s := range sets {
		if err := values.ParseAssignment(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: language %q: %v, using en\n", *lang, err)
		tag = language.English
	}

	cfg, err := gender.For(g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var root *morph.Node
	if *model != "" {
		root, err = morph.Parse(*model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
			os.Exit(1)
		}
	} else {
		root = morph.Mannequin(cfg)
	}

	binder := shapekey.Binder{}
	if *verbose {
		binder.Observer = func(target string, influence float64) {
			log.Printf("influence %s = %.3f", target, influence)
		}
	}

	inf, err := binder.Bind(root, values, g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(inf) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: model has no morph targets, nothing bound")
		inf = binder.Compute(cfg, values)
	}

	set, err := measure.Calculate(g, values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Gender: %s\n", g)
	fmt.Println("------------------------------------------------------------")
	if err := report.Measurements(os.Stdout, tag, g, set); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("------------------------------------------------------------")
	if err := report.Influences(os.Stdout, tag, cfg, inf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
