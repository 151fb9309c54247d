package batch

import (
	"sync"

	"fitmorph/internal/gender"
	"fitmorph/internal/morph"
)

// Mannequins builds a fresh procedural model per call.
func Mannequins() ModelSource {
	return func(g gender.Gender) (*morph.Node, error) {
		cfg, err := gender.For(g)
		if err != nil {
			return nil, err
		}
		return morph.Mannequin(cfg), nil
	}
}

// FileModel parses path once and returns an independent clone per call.
// The same file serves both genders.
func FileModel(path string) ModelSource {
	var (
		once sync.Once
		root *morph.Node
		err  error
	)
	return func(gender.Gender) (*morph.Node, error) {
		once.Do(func() { root, err = morph.Parse(path) })
		if err != nil {
			return nil, err
		}
		return root.Clone(), nil
	}
}
