package warp

import (
	"book3d-renderer/internal/geometry"
	"book3d-renderer/internal/mathutil"
)

// RectToQuad returns the planar projective transform mapping the rectangle
// (0,0)-(w,0)-(w,h)-(0,h) onto the quad's corners in order. Points map as
// column vectors: x' = (m0 x + m1 y + m2) / (m6 x + m7 y + m8), same for y'
// with the second row. ok is false for a degenerate quad.
func RectToQuad(w, h float64, q geometry.Quad) (mathutil.Mat3, bool) {
	sq, ok := squareToQuad(q)
	if !ok {
		return mathutil.Mat3Identity(), false
	}
	// Scale the rectangle onto the unit square first.
	scale := mathutil.Mat3{
		1 / w, 0, 0,
		0, 1 / h, 0,
		0, 0, 1,
	}
	return mathutil.Mat3Mul(sq, scale), true
}

// squareToQuad maps the unit square onto q. Uses the closed-form
// construction: the affine case when opposite edges are parallel, the
// full projective solve otherwise.
func squareToQuad(q geometry.Quad) (mathutil.Mat3, bool) {
	x0, y0 := q[0].X, q[0].Y
	x1, y1 := q[1].X, q[1].Y
	x2, y2 := q[2].X, q[2].Y
	x3, y3 := q[3].X, q[3].Y

	dx3 := x0 - x1 + x2 - x3
	dy3 := y0 - y1 + y2 - y3
	if dx3 == 0 && dy3 == 0 {
		return mathutil.Mat3{
			x1 - x0, x3 - x0, x0,
			y1 - y0, y3 - y0, y0,
			0, 0, 1,
		}, true
	}

	dx1 := x1 - x2
	dx2 := x3 - x2
	dy1 := y1 - y2
	dy2 := y3 - y2
	den := dx1*dy2 - dx2*dy1
	if den == 0 {
		return mathutil.Mat3Identity(), false
	}
	g := (dx3*dy2 - dx2*dy3) / den
	k := (dx1*dy3 - dx3*dy1) / den
	return mathutil.Mat3{
		x1 - x0 + g*x1, x3 - x0 + k*x3, x0,
		y1 - y0 + g*y1, y3 - y0 + k*y3, y0,
		g, k, 1,
	}, true
}
