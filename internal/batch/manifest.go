package batch

import (
	"encoding/json"
	"os"

	"fitmorph/internal/measure"
	"fitmorph/internal/shapekey"
)

// ManifestEntry represents one rendered preset in the output manifest.
type ManifestEntry struct {
	Name         string              `json:"name"`
	Gender       string              `json:"gender"`
	Image        string              `json:"image"`
	Measurements measure.Set         `json:"measurements"`
	Influences   shapekey.Influences `json:"influences"`
}

// WriteManifest writes the successful results to path as indented JSON.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:         r.Name,
			Gender:       string(r.Gender),
			Image:        r.Image,
			Measurements: r.Measurements,
			Influences:   r.Influences,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
