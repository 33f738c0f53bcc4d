// Package shadow blends precomputed gradient textures over the warped
// spine to suggest the fold shadow or a glossy sheen.
package shadow

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"book3d-renderer/internal/params"
)

const (
	texWidth = 256

	// Peak opacities of the two gradients.
	linearMaxAlpha  = 150
	reflectMaxAlpha = 110
)

// The textures are process-wide immutable assets, built once and shared by
// every render. Apply only ever reads them through a resized copy.
var (
	linearTex  = buildLinearTexture()
	reflectTex = buildReflectTexture()
)

// buildLinearTexture is a black gradient darkening toward the hinge fold
// at the spine's right edge, approximating ambient occlusion.
func buildLinearTexture() *image.NRGBA {
	tex := image.NewNRGBA(image.Rect(0, 0, texWidth, 1))
	for x := 0; x < texWidth; x++ {
		t := float64(x) / float64(texWidth-1)
		i := x * 4
		tex.Pix[i+3] = uint8(t*linearMaxAlpha + 0.5)
	}
	return tex
}

// buildReflectTexture is a white sheen peaking off-center, suggesting a
// specular highlight on a glossy spine.
func buildReflectTexture() *image.NRGBA {
	tex := image.NewNRGBA(image.Rect(0, 0, texWidth, 1))
	for x := 0; x < texWidth; x++ {
		t := float64(x) / float64(texWidth-1)
		d := (t - 0.35) / 0.18
		a := reflectMaxAlpha * math.Exp(-d*d/2)
		i := x * 4
		tex.Pix[i] = 255
		tex.Pix[i+1] = 255
		tex.Pix[i+2] = 255
		tex.Pix[i+3] = uint8(a + 0.5)
	}
	return tex
}

// Apply blends the selected gradient over the opaque pixels of layer
// inside region, the spine quad's bounding box. The texture is resampled
// to the region first, so intensity scales with however wide or narrow
// the spine renders. Layer alpha is left untouched.
func Apply(layer *image.NRGBA, region image.Rectangle, mode params.ShadowMode) {
	if mode == params.ShadowNone {
		return
	}
	region = region.Intersect(layer.Bounds())
	if region.Empty() {
		return
	}

	tex := linearTex
	if mode == params.ShadowReflect {
		tex = reflectTex
	}
	resized := imaging.Resize(tex, region.Dx(), region.Dy(), imaging.Linear)

	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			li := layer.PixOffset(x, y)
			if layer.Pix[li+3] == 0 {
				continue
			}
			si := resized.PixOffset(x-region.Min.X, y-region.Min.Y)
			sa := float64(resized.Pix[si+3]) / 255
			for c := 0; c < 3; c++ {
				old := float64(layer.Pix[li+c])
				top := float64(resized.Pix[si+c])
				layer.Pix[li+c] = uint8((1-sa)*old + sa*top + 0.5)
			}
		}
	}
}
