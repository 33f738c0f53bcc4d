// Package camera implements the pinhole projection from the book frame
// onto the 2D image plane.
package camera

import (
	"book3d-renderer/internal/geometry"
	"book3d-renderer/internal/mathutil"
)

// minDepth is the closest a corner may come to the camera plane, in mm.
const minDepth = 1e-6

// minFacing is the smallest normal-to-view cosine still considered
// front-facing. A panel at exactly 0° or 90° lands within float rounding
// of zero and must count as edge-on.
const minFacing = 1e-9

// Camera is a pinhole at (0, Height, -Distance) looking along +z.
// The image plane sits at the hinge (z = 0), so lengths at the hinge
// project 1:1 and recede with depth.
type Camera struct {
	Distance float64 // mm from the hinge
	Height   float64 // mm above the book's bottom edge
}

// New positions the camera for a book of the given height. heightRatio 0
// is level with the bottom edge, 1 with the top edge.
func New(distance, heightRatio, bookHeight float64) Camera {
	return Camera{
		Distance: distance,
		Height:   heightRatio * bookHeight,
	}
}

// Project maps one corner through perspective division into y-down image
// coordinates. ok is false when the corner reaches the camera plane.
func (c Camera) Project(p mathutil.Vec3) (geometry.Point2, bool) {
	depth := c.Distance + p[2]
	if depth < minDepth {
		return geometry.Point2{}, false
	}
	s := c.Distance / depth
	return geometry.Point2{
		X: p[0] * s,
		Y: (c.Height - p[1]) * s,
	}, true
}

// ProjectBook projects both panels. The hinge corners are projected once
// and shared between the two quads, keeping the common edge exact.
func (c Camera) ProjectBook(b geometry.Book) (cover, spine geometry.Quad, err error) {
	hingeTop, ok := c.Project(b.Cover[0])
	if !ok {
		return cover, spine, &geometry.DegenerateGeometryError{Panel: "cover", Reason: "hinge reaches the camera plane"}
	}
	hingeBot, ok := c.Project(b.Cover[3])
	if !ok {
		return cover, spine, &geometry.DegenerateGeometryError{Panel: "cover", Reason: "hinge reaches the camera plane"}
	}

	coverTR, ok1 := c.Project(b.Cover[1])
	coverBR, ok2 := c.Project(b.Cover[2])
	if !ok1 || !ok2 {
		return cover, spine, &geometry.DegenerateGeometryError{Panel: "cover", Reason: "corner reaches the camera plane"}
	}

	spineTL, ok1 := c.Project(b.Spine[0])
	spineBL, ok2 := c.Project(b.Spine[3])
	if !ok1 || !ok2 {
		return cover, spine, &geometry.DegenerateGeometryError{Panel: "spine", Reason: "corner reaches the camera plane"}
	}

	cover = geometry.Quad{hingeTop, coverTR, coverBR, hingeBot}
	spine = geometry.Quad{spineTL, hingeTop, hingeBot, spineBL}

	if err := c.checkFacing(b.Cover, "cover"); err != nil {
		return cover, spine, err
	}
	if err := c.checkFacing(b.Spine, "spine"); err != nil {
		return cover, spine, err
	}
	return cover, spine, nil
}

// checkFacing rejects a panel seen edge-on or from behind; warping a
// texture onto it would collapse to a line or show a mirrored back side.
func (c Camera) checkFacing(p geometry.Panel3D, name string) error {
	camPos := mathutil.Vec3{0, c.Height, -c.Distance}
	view := p.Center().Sub(camPos).Normalize()
	if p.Normal().Dot(view) >= -minFacing {
		return &geometry.DegenerateGeometryError{Panel: name, Reason: "viewed edge-on or from behind"}
	}
	return nil
}
