package shadow

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"book3d-renderer/internal/params"
)

func grayLayer(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Rect, image.NewUniform(color.NRGBA{128, 128, 128, 255}), image.Point{}, draw.Src)
	return img
}

func TestApplyNoneLeavesLayerUnchanged(t *testing.T) {
	layer := grayLayer(40, 20)
	Apply(layer, layer.Bounds(), params.ShadowNone)
	for i, p := range layer.Pix {
		want := uint8(128)
		if i%4 == 3 {
			want = 255
		}
		if p != want {
			t.Fatalf("Pix[%d] = %d, want %d", i, p, want)
		}
	}
}

func TestApplyLinearDarkensTowardFold(t *testing.T) {
	layer := grayLayer(64, 32)
	Apply(layer, layer.Bounds(), params.ShadowLinear)

	left := layer.NRGBAAt(1, 16)
	right := layer.NRGBAAt(62, 16)
	if right.R >= left.R {
		t.Errorf("right edge R = %d, left edge R = %d, want right darker", right.R, left.R)
	}
	if right.R >= 128 {
		t.Errorf("right edge R = %d, want darkened below 128", right.R)
	}
	if left.A != 255 || right.A != 255 {
		t.Errorf("alpha modified: left %d, right %d", left.A, right.A)
	}
}

func TestApplyReflectBrightensNearPeak(t *testing.T) {
	layer := grayLayer(100, 30)
	Apply(layer, layer.Bounds(), params.ShadowReflect)

	// The sheen peaks around 35% of the width.
	peak := layer.NRGBAAt(35, 15)
	edge := layer.NRGBAAt(98, 15)
	if peak.R <= 128 {
		t.Errorf("peak R = %d, want brightened above 128", peak.R)
	}
	if edge.R >= peak.R {
		t.Errorf("edge R = %d, peak R = %d, want peak brighter", edge.R, peak.R)
	}
}

func TestApplySkipsTransparentPixels(t *testing.T) {
	layer := grayLayer(20, 20)
	layer.SetNRGBA(19, 10, color.NRGBA{})
	Apply(layer, layer.Bounds(), params.ShadowLinear)
	if c := layer.NRGBAAt(19, 10); c != (color.NRGBA{}) {
		t.Errorf("transparent pixel written: %v", c)
	}
}

func TestApplyClipsRegionToLayer(t *testing.T) {
	layer := grayLayer(10, 10)
	// A region extending past the layer must not panic and still blends
	// inside the overlap.
	Apply(layer, image.Rect(5, 0, 30, 10), params.ShadowLinear)
	if c := layer.NRGBAAt(2, 5); c.R != 128 {
		t.Errorf("pixel outside region changed: R = %d", c.R)
	}
}
