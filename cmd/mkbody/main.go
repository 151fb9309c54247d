package main

import (
	"flag"
	"fmt"
	"os"

	"fitmorph/internal/gender"
	"fitmorph/internal/morph"
)

func main() {
	genderFlag := flag.String("gender", "female", "Body gender: male or female")
	out := flag.String("o", "", "Output .bmm path (default: mannequin_<gender>.bmm)")
	flag.Parse()

	g, err := gender.Parse(*genderFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	path := *out
	if path == "" {
		path = "mannequin_" + string(g) + ".bmm"
	}

	root := morph.Mannequin(gender.MustFor(g))
	if err := morph.WriteFile(path, root); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	meshes := root.Meshes()
	verts, targets := 0, 0
	for _, m := range meshes {
		verts += len(m.Verts)
		targets = max(targets, len(m.Targets))
	}
	fmt.Printf("Wrote %s: meshes=%d verts=%d targets=%d\n", path, len(meshes), verts, targets)
}
