package morph

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strings"
)

// Version is the only BMM version this package reads and writes.
const Version = 1

const (
	nameLen      = 32
	maxMeshes    = 256
	maxVerts     = 1 << 22
	maxTargets   = 1024
	maxTriangles = 1 << 23
)

// Parse reads a BMM file and returns its root node.
func Parse(path string) (*Node, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bmm: read %s: %w", path, err)
	}
	root, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	return root, nil
}

// Decode parses BMM bytes. The root node carries the model name and one
// child per mesh.
func Decode(raw []byte) (*Node, error) {
	if len(raw) < 4 || string(raw[:3]) != "BMM" {
		return nil, fmt.Errorf("bmm: invalid header")
	}
	if raw[3] != Version {
		return nil, fmt.Errorf("bmm: unsupported version %d", raw[3])
	}

	r := &reader{data: raw[4:]}
	root := &Node{Name: r.readStr(nameLen)}
	meshCount := int(r.readU16())
	if meshCount > maxMeshes {
		return nil, fmt.Errorf("bmm: invalid mesh count %d", meshCount)
	}

	for i := 0; i < meshCount; i++ {
		name := r.readStr(nameLen)
		nv := int(r.readU32())
		nt := int(r.readU32())
		ntg := int(r.readU16())
		if nv > maxVerts || nt > maxTriangles || ntg > maxTargets {
			return nil, fmt.Errorf("bmm: mesh %d: invalid counts v=%d t=%d targets=%d", i, nv, nt, ntg)
		}
		// Every vertex costs at least 20 bytes; reject counts the data cannot hold.
		if nv*20 > r.remaining() {
			return nil, fmt.Errorf("bmm: mesh %d: truncated vertex data", i)
		}

		verts := make([][3]float32, nv)
		for j := range verts {
			verts[j] = r.readVec3()
		}
		uvs := make([][2]float32, nv)
		for j := range uvs {
			uvs[j][0] = r.readF32()
			uvs[j][1] = r.readF32()
		}

		if nt*12 > r.remaining() {
			return nil, fmt.Errorf("bmm: mesh %d: truncated triangle data", i)
		}
		tris := make([]Triangle, nt)
		for j := range tris {
			for k := 0; k < 3; k++ {
				idx := r.readU32()
				if int(idx) >= nv {
					return nil, fmt.Errorf("bmm: mesh %d: triangle %d index %d out of range", i, j, idx)
				}
				tris[j][k] = idx
			}
		}

		texPath := strings.ReplaceAll(r.readStr(nameLen), "\\", "/")

		targets := make([]Target, ntg)
		for j := range targets {
			tname := r.readStr(nameLen)
			if nv*12 > r.remaining() {
				return nil, fmt.Errorf("bmm: mesh %d: truncated target %q", i, tname)
			}
			deltas := make([][3]float32, nv)
			for k := range deltas {
				deltas[k] = r.readVec3()
			}
			targets[j] = Target{Name: tname, Deltas: deltas}
		}

		if r.short {
			return nil, fmt.Errorf("bmm: mesh %d: unexpected end of data", i)
		}

		m := NewMesh(name, verts, uvs, tris, targets)
		m.TexPath = texPath
		root.Children = append(root.Children, &Node{Name: name, Mesh: m})
	}

	if r.short {
		return nil, fmt.Errorf("bmm: unexpected end of data")
	}
	return root, nil
}

type reader struct {
	data  []byte
	off   int
	short bool
}

func (r *reader) remaining() int {
	return len(r.data) - r.off
}

func (r *reader) need(n int) bool {
	if r.off+n > len(r.data) {
		r.off = len(r.data)
		r.short = true
		return false
	}
	return true
}

func (r *reader) readStr(n int) string {
	if !r.need(n) {
		return ""
	}
	s := r.data[r.off : r.off+n]
	r.off += n
	// Find null terminator
	for i, b := range s {
		if b == 0 {
			return string(s[:i])
		}
	}
	return string(s)
}

func (r *reader) readU16() uint16 {
	if !r.need(2) {
		return 0
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v
}

func (r *reader) readU32() uint32 {
	if !r.need(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v
}

func (r *reader) readF32() float32 {
	if !r.need(4) {
		return 0
	}
	v := math.Float32frombits(binary.LittleEndian.Uint32(r.data[r.off:]))
	r.off += 4
	return v
}

func (r *reader) readVec3() [3]float32 {
	return [3]float32{r.readF32(), r.readF32(), r.readF32()}
}
