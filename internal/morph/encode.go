package morph

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Encode writes every mesh below root in BMM format. Names longer than 32
// bytes are truncated.
func Encode(w io.Writer, root *Node) error {
	meshes := root.Meshes()
	if len(meshes) > maxMeshes {
		return fmt.Errorf("bmm: too many meshes (%d)", len(meshes))
	}

	for i, m := range meshes {
		if err := checkMesh(m); err != nil {
			return fmt.Errorf("bmm: mesh %d %q: %w", i, m.Name, err)
		}
	}

	bw := bufio.NewWriter(w)
	e := &writer{w: bw}
	e.bytes([]byte{'B', 'M', 'M', Version})
	name := ""
	if root != nil {
		name = root.Name
	}
	e.str(name)
	e.u16(uint16(len(meshes)))

	for _, m := range meshes {
		nv := len(m.Verts)
		e.str(m.Name)
		e.u32(uint32(nv))
		e.u32(uint32(len(m.Tris)))
		e.u16(uint16(len(m.Targets)))
		for _, v := range m.Verts {
			e.vec3(v)
		}
		for i := 0; i < nv; i++ {
			var uv [2]float32
			if i < len(m.UVs) {
				uv = m.UVs[i]
			}
			e.f32(uv[0])
			e.f32(uv[1])
		}
		for _, t := range m.Tris {
			e.u32(t[0])
			e.u32(t[1])
			e.u32(t[2])
		}
		e.str(m.TexPath)
		for _, t := range m.Targets {
			e.str(t.Name)
			for i := 0; i < nv; i++ {
				var d [3]float32
				if i < len(t.Deltas) {
					d = t.Deltas[i]
				}
				e.vec3(d)
			}
		}
	}

	if e.err != nil {
		return fmt.Errorf("bmm: write: %w", e.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bmm: write: %w", err)
	}
	return nil
}

// checkMesh applies the limits Decode enforces, so every encoded file
// decodes back to the same dictionary.
func checkMesh(m *Mesh) error {
	nv := len(m.Verts)
	if nv > maxVerts || len(m.Tris) > maxTriangles || len(m.Targets) > maxTargets {
		return fmt.Errorf("invalid counts v=%d t=%d targets=%d", nv, len(m.Tris), len(m.Targets))
	}
	for j, t := range m.Tris {
		for _, idx := range t {
			if int(idx) >= nv {
				return fmt.Errorf("triangle %d index %d out of range", j, idx)
			}
		}
	}
	seen := make(map[string]bool, len(m.Targets))
	for _, t := range m.Targets {
		name := fieldName(t.Name)
		if seen[name] {
			return fmt.Errorf("duplicate target %q", name)
		}
		seen[name] = true
	}
	return nil
}

// fieldName is s as it reads back from a fixed name field.
func fieldName(s string) string {
	if len(s) > nameLen {
		s = s[:nameLen]
	}
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s
}

// WriteFile encodes root to path.
func WriteFile(path string, root *Node) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bmm: create %s: %w", path, err)
	}
	if err := Encode(f, root); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type writer struct {
	w   io.Writer
	buf [4]byte
	err error
}

func (e *writer) bytes(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *writer) str(s string) {
	var b [nameLen]byte
	copy(b[:], s)
	e.bytes(b[:])
}

func (e *writer) u16(v uint16) {
	binary.LittleEndian.PutUint16(e.buf[:2], v)
	e.bytes(e.buf[:2])
}

func (e *writer) u32(v uint32) {
	binary.LittleEndian.PutUint32(e.buf[:4], v)
	e.bytes(e.buf[:4])
}

func (e *writer) f32(v float32) {
	e.u32(math.Float32bits(v))
}

func (e *writer) vec3(v [3]float32) {
	e.f32(v[0])
	e.f32(v[1])
	e.f32(v[2])
}
