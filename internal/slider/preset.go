package slider

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Preset is a named slider state, as stored in a presets JSON file.
type Preset struct {
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	Sliders Values `json:"sliders"`
}

// LoadPresets reads a JSON array of presets.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("slider: read %s: %w", path, err)
	}

	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("slider: parse %s: %w", path, err)
	}

	for i, p := range presets {
		if p.Name == "" {
			return nil, fmt.Errorf("slider: preset %d in %s has no name", i, path)
		}
		if p.Sliders == nil {
			presets[i].Sliders = Values{}
		}
	}
	return presets, nil
}

// ParseAssignment parses "key=value" into v.
func (v Values) ParseAssignment(s string) error {
	key, raw, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("slider: expected key=value, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("slider: value for %s: %w", key, err)
	}
	v[key] = x
	return nil
}
