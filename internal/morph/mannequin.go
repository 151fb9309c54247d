package morph

import (
	"math"

	"fitmorph/internal/gender"
)

// Mannequin builds a procedural lathe body for cfg. Every mesh carries one
// target per name in cfg.Targets(); names without a known effect get zero
// deltas. Units are meters, Y up, +Z facing the camera.
func Mannequin(cfg gender.Config) *Node {
	rings := femaleRings
	if cfg.Gender == gender.Male {
		rings = maleRings
	}
	names := cfg.Targets()

	root := &Node{Name: "mannequin_" + string(cfg.Gender)}
	for _, p := range rings {
		m := buildPart(p, names)
		root.Children = append(root.Children, &Node{Name: p.name, Mesh: m})
	}
	return root
}

const latheSegments = 16

type ring struct {
	y, rx, rz float64
	tag       string
}

type part struct {
	name  string
	cx    float64
	rings []ring
}

// effect scales a vertex's offset from the part axis for one tagged region.
type effect struct {
	tag         string // "*" matches every tag except head
	sx, sz      float64
	front, back float64
}

// heightGain is the fractional Y stretch of the Height target.
const heightGain = 0.15

var targetEffects = map[string][]effect{
	"Weight":           {{tag: "*", sx: 0.15, sz: 0.15}},
	"Neck_Thick":       {{tag: "neck", sx: 0.3, sz: 0.3}},
	"Shoulders_Wide":   {{tag: "shoulders", sx: 0.2}},
	"Traps_Size":       {{tag: "shoulders", sz: 0.15}, {tag: "neck", sx: 0.1}},
	"Breasts_Size":     {{tag: "bust", front: 0.35}},
	"Breasts_Volume":   {{tag: "bust", sx: 0.1, sz: 0.1}},
	"Breasts_Round":    {{tag: "bust", front: 0.1}},
	"Breasts_Teardrop": {{tag: "chest", front: -0.05}, {tag: "bust", front: 0.08}},
	"Breasts_Wide":     {{tag: "bust", sx: 0.1}},
	"Chest_Wide":       {{tag: "chest", sx: 0.15}, {tag: "bust", sx: 0.15}},
	"Pecs_Size":        {{tag: "bust", front: 0.15}},
	"Stomach_Fat":      {{tag: "waist", sx: 0.1, front: 0.4}},
	"Belly_Fat":        {{tag: "waist", sx: 0.1, front: 0.45}},
	"Waist_Wide":       {{tag: "waist", sx: 0.25}},
	"Torso_Wide":       {{tag: "waist", sx: 0.25}, {tag: "chest", sx: 0.1}},
	"Stomach_Soft":     {{tag: "waist", front: 0.05}},
	"Stomach_Muscular": {{tag: "chest", sx: 0.05}, {tag: "waist", sx: -0.05}},
	"Hips_Wide":        {{tag: "hips", sx: 0.25}},
	"Glutes_Size":      {{tag: "hips", back: 0.3}},
	"Arms_Thick":       {{tag: "arm", sx: 0.35, sz: 0.35}},
	"Biceps_Size":      {{tag: "arm", sx: 0.15, front: 0.15}},
	"Thighs_Thick":     {{tag: "thigh", sx: 0.3, sz: 0.3}},
	"Calves_Thick":     {{tag: "calf", sx: 0.3, sz: 0.3}},
	"Shape_Hourglass":  {{tag: "waist", sx: -0.1, sz: -0.1}, {tag: "hips", sx: 0.1}, {tag: "bust", sx: 0.1}},
	"Shape_Pear":       {{tag: "hips", sx: 0.15, sz: 0.1}},
	"Shape_Apple":      {{tag: "waist", sx: 0.2, front: 0.2}},
	"Shape_Rectangle":  {{tag: "waist", sx: 0.1}, {tag: "hips", sx: -0.05}},
}

func buildPart(p part, names []string) *Mesh {
	nr := len(p.rings)
	verts := make([][3]float32, 0, nr*latheSegments)
	uvs := make([][2]float32, 0, nr*latheSegments)
	top := p.rings[nr-1].y

	for _, r := range p.rings {
		for s := 0; s < latheSegments; s++ {
			a := 2 * math.Pi * float64(s) / latheSegments
			verts = append(verts, [3]float32{
				float32(p.cx + r.rx*math.Cos(a)),
				float32(r.y),
				float32(r.rz * math.Sin(a)),
			})
			uvs = append(uvs, [2]float32{float32(s) / latheSegments, float32(1 - r.y/top)})
		}
	}

	var tris []Triangle
	for i := 0; i+1 < nr; i++ {
		for s := 0; s < latheSegments; s++ {
			a := uint32(i*latheSegments + s)
			b := uint32(i*latheSegments + (s+1)%latheSegments)
			c := a + latheSegments
			d := b + latheSegments
			tris = append(tris, Triangle{a, b, d}, Triangle{a, d, c})
		}
	}

	targets := make([]Target, len(names))
	for ti, name := range names {
		deltas := make([][3]float32, len(verts))
		effects := targetEffects[name]
		for ri, r := range p.rings {
			for s := 0; s < latheSegments; s++ {
				vi := ri*latheSegments + s
				v := verts[vi]
				if name == "Height" {
					deltas[vi][1] = float32(r.y * heightGain)
					continue
				}
				dx := float64(v[0]) - p.cx
				dz := float64(v[2])
				for _, e := range effects {
					if e.tag != r.tag && (e.tag != "*" || r.tag == "head") {
						continue
					}
					deltas[vi][0] += float32(dx * e.sx)
					deltas[vi][2] += float32(dz * e.sz)
					if dz > 0 {
						deltas[vi][2] += float32(dz * e.front)
					} else if dz < 0 {
						deltas[vi][2] += float32(dz * e.back)
					}
				}
			}
		}
		targets[ti] = Target{Name: name, Deltas: deltas}
	}

	return NewMesh(p.name, verts, uvs, tris, targets)
}

var femaleRings = []part{
	{name: "torso", rings: []ring{
		{0.88, 0.17, 0.11, "hips"},
		{0.95, 0.17, 0.12, "hips"},
		{1.05, 0.12, 0.09, "waist"},
		{1.16, 0.13, 0.10, "chest"},
		{1.24, 0.15, 0.12, "bust"},
		{1.38, 0.18, 0.09, "shoulders"},
		{1.46, 0.05, 0.05, "neck"},
		{1.54, 0.05, 0.05, "neck"},
		{1.60, 0.08, 0.09, "head"},
		{1.70, 0.09, 0.10, "head"},
		{1.78, 0.06, 0.07, "head"},
		{1.82, 0.01, 0.01, "head"},
	}},
	{name: "leg_l", cx: -0.085, rings: legRings(0.88, 0.085, 0.050)},
	{name: "leg_r", cx: 0.085, rings: legRings(0.88, 0.085, 0.050)},
	{name: "arm_l", cx: -0.21, rings: armRings(1.36, 0.040)},
	{name: "arm_r", cx: 0.21, rings: armRings(1.36, 0.040)},
}

var maleRings = []part{
	{name: "torso", rings: []ring{
		{0.92, 0.17, 0.11, "hips"},
		{0.99, 0.16, 0.11, "hips"},
		{1.10, 0.15, 0.11, "waist"},
		{1.22, 0.17, 0.12, "chest"},
		{1.32, 0.18, 0.12, "bust"},
		{1.46, 0.22, 0.10, "shoulders"},
		{1.54, 0.06, 0.06, "neck"},
		{1.62, 0.06, 0.06, "neck"},
		{1.68, 0.09, 0.10, "head"},
		{1.78, 0.10, 0.11, "head"},
		{1.86, 0.07, 0.08, "head"},
		{1.90, 0.01, 0.01, "head"},
	}},
	{name: "leg_l", cx: -0.09, rings: legRings(0.92, 0.09, 0.055)},
	{name: "leg_r", cx: 0.09, rings: legRings(0.92, 0.09, 0.055)},
	{name: "arm_l", cx: -0.26, rings: armRings(1.44, 0.048)},
	{name: "arm_r", cx: 0.26, rings: armRings(1.44, 0.048)},
}

func legRings(hip, thigh, calf float64) []ring {
	return []ring{
		{0.02, calf * 0.7, calf * 0.8, "calf"},
		{0.30, calf, calf, "calf"},
		{hip * 0.5, calf * 0.9, calf * 0.9, "calf"},
		{hip * 0.75, thigh * 0.85, thigh * 0.85, "thigh"},
		{hip, thigh, thigh, "thigh"},
	}
}

func armRings(shoulder, r float64) []ring {
	return []ring{
		{shoulder - 0.60, r * 0.6, r * 0.6, "arm"},
		{shoulder - 0.32, r * 0.8, r * 0.8, "arm"},
		{shoulder - 0.15, r, r, "arm"},
		{shoulder, r * 1.1, r * 1.1, "arm"},
	}
}
