// Package warp texture-maps flat source images onto projected panel quads
// using an inverse-mapped planar projective transform.
package warp

import (
	"image"
	"math"

	"book3d-renderer/internal/geometry"
)

// minQuadArea is the smallest on-canvas quad area (px²) still considered
// renderable. Below this a panel is collapsing edge-on.
const minQuadArea = 1e-3

// uvTolerance absorbs float rounding at the quad boundary so abutting
// panels claim their shared edge pixels instead of leaving a seam.
const uvTolerance = 1e-9

// Panel resamples src onto quad inside a transparent width×height layer.
// For every destination pixel the inverse transform yields a source
// coordinate; pixels mapping outside the source rectangle stay unset.
func Panel(src *image.NRGBA, quad geometry.Quad, width, height int, name string) (*image.NRGBA, error) {
	if math.Abs(quad.SignedArea()) < minQuadArea {
		return nil, &geometry.DegenerateGeometryError{Panel: name, Reason: "projected quad has near-zero area"}
	}

	srcW := float64(src.Rect.Dx())
	srcH := float64(src.Rect.Dy())
	fwd, ok := RectToQuad(srcW, srcH, quad)
	if !ok {
		return nil, &geometry.DegenerateGeometryError{Panel: name, Reason: "projective transform is singular"}
	}
	inv, ok := fwd.Inverse()
	if !ok {
		return nil, &geometry.DegenerateGeometryError{Panel: name, Reason: "projective transform is not invertible"}
	}

	layer := image.NewNRGBA(image.Rect(0, 0, width, height))

	// Only the quad's bounding box can receive pixels.
	minX, minY, maxX, maxY := quad.BBox()
	x0 := clampInt(int(math.Floor(minX)), 0, width)
	y0 := clampInt(int(math.Floor(minY)), 0, height)
	x1 := clampInt(int(math.Ceil(maxX))+1, 0, width)
	y1 := clampInt(int(math.Ceil(maxY))+1, 0, height)

	for y := y0; y < y1; y++ {
		fy := float64(y) + 0.5
		for x := x0; x < x1; x++ {
			fx := float64(x) + 0.5

			den := inv[6]*fx + inv[7]*fy + inv[8]
			if math.Abs(den) < 1e-12 {
				return nil, &geometry.DegenerateGeometryError{Panel: name, Reason: "source coordinate diverges"}
			}
			sx := (inv[0]*fx + inv[1]*fy + inv[2]) / den
			sy := (inv[3]*fx + inv[4]*fy + inv[5]) / den
			if math.IsNaN(sx) || math.IsInf(sx, 0) || math.IsNaN(sy) || math.IsInf(sy, 0) {
				return nil, &geometry.DegenerateGeometryError{Panel: name, Reason: "source coordinate is not finite"}
			}

			u := sx / srcW
			v := sy / srcH
			if u < -uvTolerance || u > 1+uvTolerance || v < -uvTolerance || v > 1+uvTolerance {
				continue
			}

			r, g, b, a := sampleClamped(src, u, v)
			i := layer.PixOffset(x, y)
			layer.Pix[i] = r
			layer.Pix[i+1] = g
			layer.Pix[i+2] = b
			layer.Pix[i+3] = a
		}
	}

	return layer, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
