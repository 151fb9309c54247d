package raster

import (
	"image"
	"image/color"
	"math"

	"fitmorph/internal/mathutil"
	"fitmorph/internal/morph"
	"fitmorph/internal/texture"
)

// SkinTone is used for meshes without a resolvable texture.
var SkinTone = color.NRGBA{R: 214, G: 176, B: 150, A: 255}

// RenderModel deforms every mesh under root with its current influences and
// renders the result through cam into a square image of size*supersample.
// An empty model yields a transparent image.
func RenderModel(
	root *morph.Node,
	cam mathutil.Mat3,
	texResolver texture.Resolver,
	size int,
	supersample int,
) *image.NRGBA {
	renderSize := size * max(supersample, 1)
	fb := NewFrameBuffer(renderSize)

	type viewMesh struct {
		mesh  *morph.Mesh
		verts []mathutil.Vec3
	}
	var meshes []viewMesh

	// Bounding box in view space
	lo := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, m := range root.Meshes() {
		deformed := m.Deform()
		if len(deformed) == 0 {
			continue
		}
		vm := viewMesh{mesh: m, verts: make([]mathutil.Vec3, len(deformed))}
		for i, v := range deformed {
			t := cam.MulVec3(mathutil.FromF32(v))
			vm.verts[i] = t
			for k := 0; k < 3; k++ {
				lo[k] = math.Min(lo[k], t[k])
				hi[k] = math.Max(hi[k], t[k])
			}
		}
		meshes = append(meshes, vm)
	}
	if len(meshes) == 0 {
		return fb.Image()
	}

	span := math.Max(math.Max(hi[0]-lo[0], hi[1]-lo[1]), 0.001)
	margin := float64(16 * max(supersample, 1))
	scale := (float64(renderSize) - 2*margin) / span
	cx := (lo[0] + hi[0]) / 2
	cy := (lo[1] + hi[1]) / 2
	half := float64(renderSize) / 2

	lc := DefaultLightConfig()

	for _, vm := range meshes {
		var tex *image.NRGBA
		if texResolver != nil && vm.mesh.TexPath != "" {
			tex = texResolver.Resolve(vm.mesh.TexPath)
		}
		hasUV := tex != nil && len(vm.mesh.UVs) == len(vm.verts)

		for _, tri := range vm.mesh.Tris {
			a, b, c := int(tri[0]), int(tri[1]), int(tri[2])
			if a >= len(vm.verts) || b >= len(vm.verts) || c >= len(vm.verts) {
				continue
			}
			va, vb, vc := vm.verts[a], vm.verts[b], vm.verts[c]
			n := vb.Sub(va).Cross(vc.Sub(va)).Normalize()
			if n == (mathutil.Vec3{}) {
				continue
			}
			shade := lc.Shade(n)

			var p [3]ScreenVertex
			for k, idx := range [3]int{a, b, c} {
				v := vm.verts[idx]
				p[k] = ScreenVertex{
					X: (v[0]-cx)*scale + half,
					Y: -(v[1]-cy)*scale + half,
					Z: v[2],
				}
				if hasUV {
					p[k].U = float64(vm.mesh.UVs[idx][0])
					p[k].V = float64(vm.mesh.UVs[idx][1])
				}
			}

			t := tex
			if !hasUV {
				t = nil
			}
			RasterizeTriangle(fb, p, t, SkinTone, shade, &lc)
		}
	}

	return fb.Image()
}
