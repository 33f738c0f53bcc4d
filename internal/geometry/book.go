// Package geometry models the book as two rectangular planes sharing a
// vertical hinge edge and places them in a book-centered frame.
//
// Frame convention: y is up, the hinge runs along the y axis at x = 0,
// z recedes from the camera. The camera sits on the negative z side.
// All lengths are millimeters.
package geometry

import (
	"fmt"

	"book3d-renderer/internal/mathutil"
	"book3d-renderer/internal/params"
)

// hardcoverBoardFactor widens the effective spine by the board thickness
// of a case-bound cover relative to a paperback.
const hardcoverBoardFactor = 1.15

// Panel3D holds the four corners of one book face in the order
// top-left, top-right, bottom-right, bottom-left.
type Panel3D [4]mathutil.Vec3

// Normal returns the unit normal of the panel plane. For front-facing
// panels it points toward the camera (negative z).
func (p Panel3D) Normal() mathutil.Vec3 {
	e1 := p[1].Sub(p[0])
	e2 := p[3].Sub(p[0])
	return e1.Cross(e2).Normalize()
}

// Center returns the panel centroid.
func (p Panel3D) Center() mathutil.Vec3 {
	return p[0].Add(p[1]).Add(p[2]).Add(p[3]).Scale(0.25)
}

// Book is the posed cover and spine. The cover's left edge and the
// spine's right edge are the same two Vec3 values, so any deterministic
// projection maps them to bit-identical 2D points.
type Book struct {
	Cover  Panel3D
	Spine  Panel3D
	Height float64 // mm, shared vertical extent
}

// Spec carries the physical dimensions and pose needed to place the panels.
type Spec struct {
	CoverWidth   float64 // mm
	CoverHeight  float64 // mm, derived from the cover image aspect
	SpineWidth   float64 // mm, spine stack total before type/stretch scaling
	BookType     params.BookType
	WidthStretch float64 // visual spine widening factor

	PerspectiveAngle float64 // degrees
	SpineSpreadAngle float64 // degrees
}

// EffectiveSpineWidth is the spine width actually modeled: the physical
// stack width scaled by the stretch factor and, for hardcovers, the
// board thickness.
func (s Spec) EffectiveSpineWidth() float64 {
	w := s.SpineWidth * s.WidthStretch
	if s.BookType == params.Hardcover {
		w *= hardcoverBoardFactor
	}
	return w
}

// Build places both panels. The cover plane is rotated about the hinge by
// the perspective angle; the spine plane by perspective plus spread, so a
// thin spine can be opened wider without changing its true dimensions.
func Build(s Spec) Book {
	coverRot := mathutil.RotY(-mathutil.Deg2Rad(s.PerspectiveAngle))
	spineRot := mathutil.RotY(-mathutil.Deg2Rad(s.PerspectiveAngle + s.SpineSpreadAngle))

	// At angle 0 the cover extends along +x and the spine recedes along +z.
	coverExt := coverRot.MulVec3(mathutil.Vec3{s.CoverWidth, 0, 0})
	spineExt := spineRot.MulVec3(mathutil.Vec3{0, 0, s.EffectiveSpineWidth()})

	hingeTop := mathutil.Vec3{0, s.CoverHeight, 0}
	hingeBot := mathutil.Vec3{0, 0, 0}

	return Book{
		Cover: Panel3D{
			hingeTop,
			hingeTop.Add(coverExt),
			hingeBot.Add(coverExt),
			hingeBot,
		},
		Spine: Panel3D{
			hingeTop.Add(spineExt),
			hingeTop,
			hingeBot,
			hingeBot.Add(spineExt),
		},
		Height: s.CoverHeight,
	}
}

// DegenerateGeometryError reports a panel collapsing to an unrenderable
// shape, e.g. viewed exactly edge-on.
type DegenerateGeometryError struct {
	Panel  string
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("geometry: %s panel degenerate: %s", e.Panel, e.Reason)
}
