package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// extRank orders formats when two files share a stem: TGA carries alpha and wins.
var extRank = map[string]int{".tga": 4, ".png": 3, ".jpg": 2, ".jpeg": 2, ".bmp": 1}

// Index maps lowercase texture stems to filesystem paths.
type Index struct {
	entries map[string]string
}

// BuildIndex walks skinDir recursively for TGA, PNG, JPEG and BMP files.
// A missing directory yields an empty index.
func BuildIndex(skinDir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if skinDir == "" {
		return idx
	}

	filepath.WalkDir(skinDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		rank, ok := extRank[ext]
		if !ok {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		if existing, exists := idx.entries[stem]; exists {
			if extRank[strings.ToLower(filepath.Ext(existing))] >= rank {
				return nil
			}
		}
		idx.entries[stem] = path
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for a mesh texture reference,
// matching on the lowercase stem only.
func (idx *Index) ResolvePath(texName string) (string, bool) {
	texName = strings.ReplaceAll(texName, "\\", "/")
	base := filepath.Base(texName)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
