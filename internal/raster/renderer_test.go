package raster

import (
	"image"
	"image/color"
	"testing"

	"fitmorph/internal/gender"
	"fitmorph/internal/mathutil"
	"fitmorph/internal/morph"
)

func coverage(img *image.NRGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestRenderEmptyModel(t *testing.T) {
	img := RenderModel(&morph.Node{}, mathutil.BodyCamera, nil, 16, 2)
	if img.Bounds().Dx() != 32 {
		t.Errorf("size = %v, want 32 (16×2)", img.Bounds())
	}
	if coverage(img) != 0 {
		t.Error("empty model drew pixels")
	}

	var nilRoot *morph.Node
	if coverage(RenderModel(nilRoot, mathutil.BodyCamera, nil, 8, 1)) != 0 {
		t.Error("nil model drew pixels")
	}
}

func TestRenderMannequinDrawsAndWidens(t *testing.T) {
	model := morph.Mannequin(gender.MustFor(gender.Female))
	thin := coverage(RenderModel(model, mathutil.FrontCamera, nil, 64, 1))
	if thin == 0 {
		t.Fatal("mannequin rendered nothing")
	}

	for _, m := range model.Meshes() {
		m.Influences[m.Dict["Weight"]] = 1
	}
	heavy := coverage(RenderModel(model, mathutil.FrontCamera, nil, 64, 1))
	if heavy <= thin {
		t.Errorf("coverage %d -> %d, want more pixels with weight", thin, heavy)
	}
}

func TestRasterizeTriangleDepthTest(t *testing.T) {
	fb := NewFrameBuffer(8)
	lc := DefaultLightConfig()
	far := [3]ScreenVertex{{X: 0, Y: 0, Z: 0}, {X: 8, Y: 0, Z: 0}, {X: 0, Y: 8, Z: 0}}
	near := [3]ScreenVertex{{X: 0, Y: 0, Z: 1}, {X: 8, Y: 0, Z: 1}, {X: 0, Y: 8, Z: 1}}

	RasterizeTriangle(fb, near, nil, color.NRGBA{R: 255, A: 255}, 1, &lc)
	RasterizeTriangle(fb, far, nil, color.NRGBA{B: 255, A: 255}, 1, &lc)

	px := fb.Image().NRGBAAt(1, 1)
	if px.R == 0 || px.B != 0 {
		t.Errorf("pixel = %+v, want the nearer red triangle", px)
	}
	if fb.Coverage() == 0 {
		t.Error("coverage is zero")
	}
}

func TestSampleTextureWrapsU(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	tex.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})

	r, g, _, a := SampleTexture(tex, 0, 0.5)
	if r != 255 || g != 0 || a != 255 {
		t.Errorf("u=0 -> r=%d g=%d a=%d", r, g, a)
	}
	r2, g2, _, _ := SampleTexture(tex, 1, 0.5)
	if r2 != r || g2 != g {
		t.Error("u=1 should wrap onto u=0")
	}
}
