package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fitmorph/internal/batch"
	"fitmorph/internal/config"
	"fitmorph/internal/mathutil"
	"fitmorph/internal/slider"
	"fitmorph/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	testN := flag.Int("test", 0, "Render only first N presets for testing")
	name := flag.String("name", "", "Render only the preset with this name")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	model := flag.String("model", "", "Path to a .bmm model (default: procedural mannequin)")
	presetsFile := flag.String("presets", "", "Presets JSON file (default: presets.json)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 512)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config file and environment
	cfg.Resolve(config.Flags{
		ModelPath:   *model,
		PresetsFile: *presetsFile,
		OutputDir:   *outputDir,
		Workers:     *workers,
		RenderSize:  *size,
	})

	presets, err := slider.LoadPresets(cfg.PresetsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading presets: %v\n", err)
		os.Exit(1)
	}

	if *name != "" {
		var filtered []slider.Preset
		for _, p := range presets {
			if p.Name == *name {
				filtered = append(filtered, p)
			}
		}
		presets = filtered
	}

	// Limit for testing
	if *testN > 0 && *testN < len(presets) {
		presets = presets[:*testN]
	}

	if len(presets) == 0 {
		fmt.Println("No presets to render.")
		os.Exit(0)
	}

	// Build texture index
	var texCache texture.Resolver
	if cfg.SkinDir != "" {
		texIndex := texture.BuildIndex(cfg.SkinDir)
		texCache = texture.NewCache(texIndex)
		fmt.Printf("Textures: %d indexed\n", texIndex.Len())
	}

	models := batch.Mannequins()
	source := "procedural mannequin"
	if cfg.ModelPath != "" {
		models = batch.FileModel(cfg.ModelPath)
		source = cfg.ModelPath
	}

	cam := mathutil.BodyCamera
	if cfg.Camera == config.CameraFront {
		cam = mathutil.FrontCamera
	}

	fmt.Println("Body shape-key renderer → WebP")
	fmt.Printf("Presets: %d, Workers: %d\n", len(presets), cfg.Workers)
	fmt.Printf("Model: %s\n", source)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Models:      models,
		TexResolver: texCache,
		Camera:      cam,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Progress:    true,
	}

	results := batch.Run(batchCfg, presets)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(presets))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
