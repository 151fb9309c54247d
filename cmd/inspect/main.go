package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fitmorph/internal/morph"
	"fitmorph/internal/texture"
)

func main() {
	skins := flag.String("skins", "", "Skin texture directory used to resolve mesh textures")
	flag.Parse()

	var cache *texture.Cache
	if *skins != "" {
		cache = texture.NewCache(texture.BuildIndex(*skins))
	}

	for _, arg := range flag.Args() {
		root, err := morph.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error %s: %v\n", arg, err)
			continue
		}
		meshes := root.Meshes()
		fmt.Printf("\n=== %s %q (meshes=%d) ===\n", arg, root.Name, len(meshes))
		printMeshes(meshes, cache)
	}
}

func printMeshes(meshes []*morph.Mesh, cache *texture.Cache) {
	for i, m := range meshes {
		texInfo := "none"
		if m.TexPath != "" {
			texInfo = "MISSING"
			if cache != nil {
				if tex := cache.Resolve(m.TexPath); tex != nil {
					b := tex.Bounds()
					texInfo = fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
				}
			}
		}
		stem := strings.TrimSuffix(filepath.Base(m.TexPath), filepath.Ext(m.TexPath))

		if len(m.Verts) == 0 {
			fmt.Printf("  Mesh[%d] %s: empty\n", i, m.Name)
			continue
		}
		minV, maxV := m.Verts[0], m.Verts[0]
		for _, v := range m.Verts[1:] {
			for k := 0; k < 3; k++ {
				minV[k] = min(minV[k], v[k])
				maxV[k] = max(maxV[k], v[k])
			}
		}
		fmt.Printf("  Mesh[%d] %s: v=%d t=%d tex=%q (%s) bbox=(%.3f,%.3f,%.3f)\n",
			i, m.Name, len(m.Verts), len(m.Tris), stem, texInfo,
			maxV[0]-minV[0], maxV[1]-minV[1], maxV[2]-minV[2])

		// Largest displacement per target, to spot dead shape keys
		for _, t := range m.Targets {
			peak := float32(0)
			for _, d := range t.Deltas {
				peak = max(peak, d[0]*d[0]+d[1]*d[1]+d[2]*d[2])
			}
			mark := ""
			if peak == 0 {
				mark = " [EMPTY]"
			}
			fmt.Printf("    %-20s slot=%d%s\n", t.Name, m.Dict[t.Name], mark)
		}
	}
}
