package morph

// Triangle holds vertex index triples. UVs share the vertex indices.
type Triangle [3]uint32

// Target is one named deformation: a per-vertex offset from the base mesh.
type Target struct {
	Name   string
	Deltas [][3]float32 // len == len(Mesh.Verts)
}

// Mesh holds base geometry, its morph targets and the current influences.
type Mesh struct {
	Name    string
	Verts   [][3]float32 // base pose
	UVs     [][2]float32 // per vertex, may be empty
	Tris    []Triangle
	TexPath string
	Targets []Target

	// Dict maps target name to its slot in Influences.
	Dict       map[string]int
	Influences []float32
	Dirty      bool // influences changed since the last Deform
}

// NewMesh builds the dictionary and a zeroed influence slot per target.
func NewMesh(name string, verts [][3]float32, uvs [][2]float32, tris []Triangle, targets []Target) *Mesh {
	m := &Mesh{
		Name:    name,
		Verts:   verts,
		UVs:     uvs,
		Tris:    tris,
		Targets: targets,
	}
	m.reindex()
	return m
}

func (m *Mesh) reindex() {
	m.Dict = make(map[string]int, len(m.Targets))
	for i, t := range m.Targets {
		m.Dict[t.Name] = i
	}
	m.Influences = make([]float32, len(m.Targets))
}

// Deform returns base vertices plus the influence-weighted target deltas.
// It clears Dirty.
func (m *Mesh) Deform() [][3]float32 {
	out := make([][3]float32, len(m.Verts))
	copy(out, m.Verts)
	for ti, t := range m.Targets {
		if ti >= len(m.Influences) {
			break
		}
		w := m.Influences[ti]
		if w == 0 {
			continue
		}
		n := min(len(t.Deltas), len(out))
		for vi := 0; vi < n; vi++ {
			d := t.Deltas[vi]
			out[vi][0] += d[0] * w
			out[vi][1] += d[1] * w
			out[vi][2] += d[2] * w
		}
	}
	m.Dirty = false
	return out
}
