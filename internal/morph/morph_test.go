package morph

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"fitmorph/internal/gender"
)

func quad() *Node {
	verts := [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	uvs := [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tris := []Triangle{{0, 1, 2}, {0, 2, 3}}
	targets := []Target{
		{Name: "Push", Deltas: [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}}},
		{Name: "Stretch", Deltas: [][3]float32{{0, 0, 0}, {2, 0, 0}, {2, 0, 0}, {0, 0, 0}}},
	}
	m := NewMesh("quad", verts, uvs, tris, targets)
	m.TexPath = "skin/base.tga"
	return &Node{Name: "model", Children: []*Node{{Name: "group", Children: []*Node{{Name: "quad", Mesh: m}}}}}
}

func TestNewMeshIndexesTargets(t *testing.T) {
	m := quad().Meshes()[0]
	if m.Dict["Push"] != 0 || m.Dict["Stretch"] != 1 || len(m.Influences) != 2 {
		t.Errorf("dict=%v influences=%v", m.Dict, m.Influences)
	}
}

func TestDeformIsLinear(t *testing.T) {
	m := quad().Meshes()[0]
	m.Influences[0] = 0.5
	m.Influences[1] = 0.25
	m.Dirty = true

	got := m.Deform()
	want := [][3]float32{{0, 0, 0.5}, {1.5, 0, 0.5}, {1.5, 1, 0.5}, {0, 1, 0.5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Deform = %v, want %v", got, want)
	}
	if m.Dirty {
		t.Error("Deform should clear Dirty")
	}
	if m.Verts[1][0] != 1 {
		t.Error("Deform mutated the base pose")
	}
}

func TestTraverseAndMeshes(t *testing.T) {
	root := quad()
	var names []string
	root.Traverse(func(n any) { names = append(names, n.(*Node).Name) })
	if want := []string{"model", "group", "quad"}; !reflect.DeepEqual(names, want) {
		t.Errorf("visit order %v, want %v", names, want)
	}

	var nilNode *Node
	nilNode.Traverse(func(any) { t.Error("visited through nil node") })
	if len(nilNode.Meshes()) != 0 {
		t.Error("nil node has meshes")
	}
	if (&Node{}).MorphDictionary() != nil || (&Node{}).MorphInfluences() != nil {
		t.Error("mesh-less node exposes morph data")
	}
}

func TestCloneSeparatesInfluences(t *testing.T) {
	a := quad()
	b := a.Clone()
	b.Meshes()[0].Influences[0] = 1
	if a.Meshes()[0].Influences[0] != 0 {
		t.Error("clone shares influences with original")
	}
	if len(b.Meshes()[0].Verts) != 4 {
		t.Error("clone lost geometry")
	}
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, quad()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	root, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if root.Name != "model" || len(root.Children) != 1 {
		t.Fatalf("root = %q with %d children", root.Name, len(root.Children))
	}
	got, want := root.Children[0].Mesh, quad().Meshes()[0]
	if got.Name != want.Name || got.TexPath != want.TexPath {
		t.Errorf("name/texture = %q/%q", got.Name, got.TexPath)
	}
	if !reflect.DeepEqual(got.Verts, want.Verts) || !reflect.DeepEqual(got.UVs, want.UVs) ||
		!reflect.DeepEqual(got.Tris, want.Tris) || !reflect.DeepEqual(got.Targets, want.Targets) {
		t.Error("geometry or targets changed")
	}
	if !reflect.DeepEqual(got.Dict, want.Dict) {
		t.Errorf("dict = %v", got.Dict)
	}
}

func TestDecodeErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, quad()); err != nil {
		t.Fatal(err)
	}
	full := buf.Bytes()

	badVersion := append([]byte(nil), full...)
	badVersion[3] = 9

	badIndex := append([]byte(nil), full...)
	// First triangle index sits after header, names, counts, 4 verts and 4 UVs.
	off := 4 + 32 + 2 + 32 + 4 + 4 + 2 + 4*12 + 4*8
	badIndex[off] = 77

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"empty", nil, "invalid header"},
		{"wrong magic", []byte("BMD\x01rest"), "invalid header"},
		{"version", badVersion, "unsupported version"},
		{"truncated", full[:len(full)-10], "truncated"},
		{"short header", full[:40], "unexpected end"},
		{"triangle index", badIndex, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestEncodeRejectsWhatDecodeWould(t *testing.T) {
	long := strings.Repeat("k", nameLen)
	tests := []struct {
		name string
		edit func(m *Mesh)
		want string
	}{
		{"duplicate target", func(m *Mesh) { m.Targets[1].Name = "Push" }, "duplicate target"},
		{"names equal after truncation", func(m *Mesh) {
			m.Targets[0].Name = long + "a"
			m.Targets[1].Name = long + "b"
		}, "duplicate target"},
		{"too many targets", func(m *Mesh) { m.Targets = make([]Target, maxTargets+1) }, "invalid counts"},
		{"bad triangle", func(m *Mesh) { m.Tris[1][2] = 4 }, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := quad()
			tt.edit(root.Meshes()[0])
			var buf bytes.Buffer
			err := Encode(&buf, root)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
			if buf.Len() != 0 {
				t.Errorf("wrote %d bytes for a rejected model", buf.Len())
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.bmm")
	if err := WriteFile(path, quad()); err != nil {
		t.Fatal(err)
	}
	root, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Meshes()) != 1 {
		t.Errorf("got %d meshes", len(root.Meshes()))
	}
	if _, err := Parse(filepath.Join(t.TempDir(), "missing.bmm")); err == nil {
		t.Error("missing file parsed")
	}
}

func TestMannequinTargetsMatchConfig(t *testing.T) {
	for _, g := range []gender.Gender{gender.Male, gender.Female} {
		cfg := gender.MustFor(g)
		root := Mannequin(cfg)
		meshes := root.Meshes()
		if len(meshes) != 5 {
			t.Fatalf("%s: %d meshes, want 5", g, len(meshes))
		}
		for _, m := range meshes {
			if len(m.Targets) != len(cfg.Targets()) {
				t.Errorf("%s/%s: %d targets, want %d", g, m.Name, len(m.Targets), len(cfg.Targets()))
			}
			for _, name := range cfg.Targets() {
				if _, ok := m.Dict[name]; !ok {
					t.Errorf("%s/%s: missing target %s", g, m.Name, name)
				}
			}
			for _, tri := range m.Tris {
				for _, idx := range tri {
					if int(idx) >= len(m.Verts) {
						t.Fatalf("%s/%s: triangle index %d out of range", g, m.Name, idx)
					}
				}
			}
		}
	}
}

func TestMannequinHipsWiden(t *testing.T) {
	root := Mannequin(gender.MustFor(gender.Female))
	torso := root.Meshes()[0]
	base := bottomRingWidth(torso.Deform())
	torso.Influences[torso.Dict["Hips_Wide"]] = 1
	wide := bottomRingWidth(torso.Deform())
	if wide <= base {
		t.Errorf("hip width %v -> %v, want wider", base, wide)
	}
}

func TestMannequinHeightStretches(t *testing.T) {
	root := Mannequin(gender.MustFor(gender.Male))
	torso := root.Meshes()[0]
	torso.Influences[torso.Dict["Height"]] = 1
	top := float32(0)
	for _, v := range torso.Deform() {
		top = max(top, v[1])
	}
	if want := float32(1.90 * (1 + heightGain)); top < want-1e-4 || top > want+1e-4 {
		t.Errorf("top = %v, want %v", top, want)
	}
}

// bottomRingWidth returns the X extent of the first lathe ring.
func bottomRingWidth(verts [][3]float32) float32 {
	lo, hi := verts[0][0], verts[0][0]
	for _, v := range verts[:latheSegments] {
		lo = min(lo, v[0])
		hi = max(hi, v[0])
	}
	return hi - lo
}
