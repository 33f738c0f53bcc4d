package mathutil

import (
	"math"
	"testing"
)

func vecApprox(a, b Vec3, eps float64) bool {
	return math.Abs(a[0]-b[0]) < eps && math.Abs(a[1]-b[1]) < eps && math.Abs(a[2]-b[2]) < eps
}

func TestMat3InverseRoundTrip(t *testing.T) {
	m := Mat3{2, 1, 0, 0, 3, 1, 1, 0, 2}
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("Inverse reported singular")
	}
	got := Mat3Mul(m, inv)
	want := Mat3Identity()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("M * M⁻¹[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMat3InverseSingular(t *testing.T) {
	m := Mat3{1, 2, 3, 2, 4, 6, 0, 0, 1}
	if _, ok := m.Inverse(); ok {
		t.Error("singular matrix inverted")
	}
}

func TestRotY(t *testing.T) {
	// Quarter turn takes +X to +Z.
	r := RotY(Deg2Rad(90))
	got := r.MulVec3(Vec3{1, 0, 0})
	if !vecApprox(got, Vec3{0, 0, -1}, 1e-12) {
		t.Fatalf("RotY(90°) * X = %v, want (0, 0, -1)", got)
	}
	// Rotation preserves length and leaves Y alone.
	v := Vec3{3, 5, 1}
	rv := RotY(Deg2Rad(33)).MulVec3(v)
	if math.Abs(rv.Len()-v.Len()) > 1e-12 {
		t.Errorf("length changed: %v -> %v", v.Len(), rv.Len())
	}
	if rv[1] != 5 {
		t.Errorf("Y component changed: %v", rv[1])
	}
}

func TestVec3CrossOrthogonal(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-2, 0, 5}
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("cross product not orthogonal: %v", c)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{0, 3, 4}.Normalize()
	if !vecApprox(n, Vec3{0, 0.6, 0.8}, 1e-12) {
		t.Errorf("Normalize = %v, want (0, 0.6, 0.8)", n)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", z)
	}
}
