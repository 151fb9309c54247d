package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"fitmorph/internal/gender"
	"fitmorph/internal/mathutil"
	"fitmorph/internal/measure"
	"fitmorph/internal/morph"
	"fitmorph/internal/postprocess"
	"fitmorph/internal/raster"
	"fitmorph/internal/shapekey"
	"fitmorph/internal/slider"
	"fitmorph/internal/texture"

	"github.com/HugoSmits86/nativewebp"
)

// ModelSource hands out a model for a gender. Each call must return a model
// no other goroutine is binding.
type ModelSource func(g gender.Gender) (*morph.Node, error)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Models      ModelSource
	TexResolver texture.Resolver
	Camera      mathutil.Mat3
	RenderSize  int
	Supersample int
	Workers     int
	Progress    bool // print a progress line every 2s
}

// Result holds the outcome of processing one preset.
type Result struct {
	Name         string
	Gender       gender.Gender
	Image        string
	Measurements measure.Set
	Influences   shapekey.Influences
	Success      bool
	Error        string
}

// Run processes all presets using a worker pool. Results keep preset order.
func Run(cfg Config, presets []slider.Preset) []Result {
	total := len(presets)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	if cfg.Progress {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					if p := processed.Load(); p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Printf("  [%d/%d] %.1f presets/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	names := imageNames(presets)

	workers := max(cfg.Workers, 1)
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processPreset(cfg, presets[idx], names[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range presets {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func processPreset(cfg Config, p slider.Preset, rel string) Result {
	res := Result{Name: p.Name}
	fail := func(format string, args ...any) Result {
		res.Error = fmt.Sprintf(format, args...)
		return res
	}

	g, err := gender.Parse(p.Gender)
	if err != nil {
		return fail("%v", err)
	}
	res.Gender = g

	model, err := cfg.Models(g)
	if err != nil {
		return fail("model: %v", err)
	}

	inf, err := shapekey.Binder{}.Bind(model, p.Sliders, g)
	if err != nil {
		return fail("%v", err)
	}
	res.Influences = inf

	ms, err := measure.Calculate(g, p.Sliders)
	if err != nil {
		return fail("%v", err)
	}
	res.Measurements = ms

	img := raster.RenderModel(model, cfg.Camera, cfg.TexResolver, cfg.RenderSize, cfg.Supersample)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fail("%v", err)
	}
	if err := writeWebP(outPath, img); err != nil {
		return fail("%v", err)
	}

	res.Image = rel
	res.Success = true
	return res
}

// writeWebP encodes img to path. A failed close fails the write.
func writeWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("WebP encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("WebP write %s: %w", path, err)
	}
	return nil
}

// imageNames assigns each preset a distinct file name. A name that collides
// with an earlier one gets the preset's index as a suffix.
func imageNames(presets []slider.Preset) []string {
	names := make([]string, len(presets))
	taken := make(map[string]bool, len(presets))
	for i, p := range presets {
		name := ImageName(p.Name)
		if taken[strings.ToLower(name)] {
			name = ImageName(p.Name + "_" + strconv.Itoa(i))
			for n := 2; taken[strings.ToLower(name)]; n++ {
				name = ImageName(p.Name + "_" + strconv.Itoa(i) + "_" + strconv.Itoa(n))
			}
		}
		taken[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}

// ImageName turns a preset name into a safe relative file name. Distinct
// names may map to the same file; Run disambiguates them.
func ImageName(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	return clean + ".webp"
}
