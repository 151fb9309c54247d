package gender

import (
	"fmt"
	"strings"
)

// Gender selects one of the two body configurations. Never mixed.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// InvalidGenderError reports an unrecognized gender discriminator.
type InvalidGenderError struct {
	Value string
}

func (e *InvalidGenderError) Error() string {
	return fmt.Sprintf("gender: invalid gender %q (want male or female)", e.Value)
}

// Parse accepts "male" or "female", case-insensitive.
func Parse(s string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case Male:
		return Male, nil
	case Female:
		return Female, nil
	}
	return "", &InvalidGenderError{Value: s}
}

// Entry is one slider-to-morph mapping. It is either Continuous or Enum.
type Entry interface {
	SliderKey() string
	TargetKeys() []string
	Rank() int
	isEntry()
}

// Continuous copies the (optionally clamped) slider value onto every key.
type Continuous struct {
	Slider   string
	Keys     []string
	Min, Max *float64
	Priority int // higher wins on shared target names
}

// Enum activates exactly one key, selected by rounding the slider value.
type Enum struct {
	Slider   string
	Keys     []string
	Priority int
}

func (c Continuous) SliderKey() string    { return c.Slider }
func (c Continuous) TargetKeys() []string { return c.Keys }
func (c Continuous) Rank() int            { return c.Priority }
func (Continuous) isEntry()               {}

func (e Enum) SliderKey() string    { return e.Slider }
func (e Enum) TargetKeys() []string { return e.Keys }
func (e Enum) Rank() int            { return e.Priority }
func (Enum) isEntry()               {}

// Group is a named, ordered set of entries ("torso", "hips", ...).
type Group struct {
	Name    string
	Entries []Entry
}

// Config is the full mapping for one gender. Groups and entries keep
// declaration order, which is also the binder's processing order.
type Config struct {
	Gender Gender
	Groups []Group
}

// Targets returns every morph target name in declaration order, once each.
func (c Config) Targets() []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range c.Groups {
		for _, e := range g.Entries {
			for _, k := range e.TargetKeys() {
				if seen[k] {
					continue
				}
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}

// Sliders returns the slider keys in declaration order, once each.
func (c Config) Sliders() []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range c.Groups {
		for _, e := range g.Entries {
			if k := e.SliderKey(); !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}

// Duplicates lists target names claimed by more than one entry.
func (c Config) Duplicates() []string {
	count := make(map[string]int)
	var order []string
	for _, g := range c.Groups {
		for _, e := range g.Entries {
			// An entry listing a key twice only counts once.
			local := make(map[string]bool)
			for _, k := range e.TargetKeys() {
				if local[k] {
					continue
				}
				local[k] = true
				if count[k] == 0 {
					order = append(order, k)
				}
				count[k]++
			}
		}
	}
	var dups []string
	for _, k := range order {
		if count[k] > 1 {
			dups = append(dups, k)
		}
	}
	return dups
}
