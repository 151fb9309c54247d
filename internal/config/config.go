package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix scopes every environment override.
const EnvPrefix = "BODYMORPH_"

// Camera presets accepted in Config.Camera.
const (
	CameraBody  = "body"
	CameraFront = "front"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir     string `json:"base_dir" env:"BASE_DIR"`
	ModelPath   string `json:"model" env:"MODEL"` // empty = procedural mannequin
	SkinDir     string `json:"skin_dir" env:"SKIN_DIR"`
	PresetsFile string `json:"presets" env:"PRESETS"`
	OutputDir   string `json:"output_dir" env:"OUTPUT_DIR"`

	// Render settings
	RenderSize  int    `json:"render_size" env:"RENDER_SIZE"`
	Supersample int    `json:"supersample" env:"SUPERSAMPLE"`
	Workers     int    `json:"workers" env:"WORKERS"`
	Camera      string `json:"camera" env:"CAMERA"` // CameraBody or CameraFront
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from BODYMORPH_* variables. Unset variables
// leave fields untouched.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Flags holds CLI flag values that override config file and environment.
type Flags struct {
	ModelPath   string
	PresetsFile string
	OutputDir   string
	Workers     int
	RenderSize  int
}

// Resolve applies flags, resolves relative paths against BaseDir and fills
// defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.ModelPath != "" {
		c.ModelPath = flags.ModelPath
	}
	if flags.PresetsFile != "" {
		c.PresetsFile = flags.PresetsFile
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.RenderSize > 0 {
		c.RenderSize = flags.RenderSize
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.PresetsFile == "" {
		c.PresetsFile = "presets.json"
	}
	c.ModelPath = c.abs(c.ModelPath)
	c.SkinDir = c.abs(c.SkinDir)
	c.PresetsFile = c.abs(c.PresetsFile)
	c.OutputDir = c.abs(c.OutputDir)

	// Defaults for render settings
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	c.Camera = strings.ToLower(strings.TrimSpace(c.Camera))
	switch c.Camera {
	case CameraBody, CameraFront:
	case "":
		c.Camera = CameraBody
	default:
		fmt.Fprintf(os.Stderr, "Warning: unknown camera %q, using %s\n", c.Camera, CameraBody)
		c.Camera = CameraBody
	}
}

func (c *Config) abs(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}
