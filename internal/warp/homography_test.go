package warp

import (
	"math"
	"testing"

	"book3d-renderer/internal/geometry"
	"book3d-renderer/internal/mathutil"
)

func applyTransform(m mathutil.Mat3, x, y float64) (float64, float64) {
	den := m[6]*x + m[7]*y + m[8]
	return (m[0]*x + m[1]*y + m[2]) / den, (m[3]*x + m[4]*y + m[5]) / den
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectToQuadMapsCorners(t *testing.T) {
	q := geometry.Quad{{X: 2, Y: 1}, {X: 12, Y: 2}, {X: 11, Y: 14}, {X: 1, Y: 12}}
	m, ok := RectToQuad(5, 7, q)
	if !ok {
		t.Fatal("RectToQuad reported degenerate")
	}

	rect := [4][2]float64{{0, 0}, {5, 0}, {5, 7}, {0, 7}}
	for i, c := range rect {
		x, y := applyTransform(m, c[0], c[1])
		if !approxEqual(x, q[i].X, 1e-9) || !approxEqual(y, q[i].Y, 1e-9) {
			t.Errorf("corner %d: (%v,%v), want (%v,%v)", i, x, y, q[i].X, q[i].Y)
		}
	}
}

func TestRectToQuadAffineCase(t *testing.T) {
	// A parallelogram hits the affine branch.
	q := geometry.Quad{{X: 3, Y: 4}, {X: 13, Y: 5}, {X: 15, Y: 11}, {X: 5, Y: 10}}
	m, ok := RectToQuad(10, 6, q)
	if !ok {
		t.Fatal("RectToQuad reported degenerate")
	}
	if m[6] != 0 || m[7] != 0 {
		t.Errorf("expected affine transform, got projective row (%v, %v)", m[6], m[7])
	}
	x, y := applyTransform(m, 10, 6)
	if !approxEqual(x, 15, 1e-9) || !approxEqual(y, 11, 1e-9) {
		t.Errorf("corner maps to (%v,%v), want (15,11)", x, y)
	}
}

func TestRectToQuadRoundTrip(t *testing.T) {
	q := geometry.Quad{{X: 2, Y: 1}, {X: 12, Y: 2}, {X: 11, Y: 14}, {X: 1, Y: 12}}
	m, ok := RectToQuad(5, 7, q)
	if !ok {
		t.Fatal("RectToQuad reported degenerate")
	}
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("transform not invertible")
	}
	// Interior point through forward then inverse lands where it started.
	fx, fy := applyTransform(m, 2.5, 3.5)
	bx, by := applyTransform(inv, fx, fy)
	if !approxEqual(bx, 2.5, 1e-9) || !approxEqual(by, 3.5, 1e-9) {
		t.Errorf("round trip = (%v,%v), want (2.5,3.5)", bx, by)
	}
}

func TestRectToQuadCollinearFails(t *testing.T) {
	q := geometry.Quad{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	if _, ok := RectToQuad(4, 4, q); ok {
		t.Error("collinear quad accepted")
	}
}
