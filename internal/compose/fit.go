// Package compose assembles warped panels onto the final canvas: it
// normalizes projected quads into pixel space, fills the background,
// composites layers, and applies the optional cover outline.
package compose

import "book3d-renderer/internal/geometry"

// Placement is the uniform scale and translation taking image-plane
// coordinates into canvas pixel space. Uniform by construction, so the
// book is never distorted and points shared between quads stay shared.
type Placement struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Fit sizes the union bounding box of the quads into a size×size canvas,
// reserving border×size of margin on each side and centering the content
// on both axes.
func Fit(quads []geometry.Quad, size int, border float64) Placement {
	minX, minY, maxX, maxY := quads[0].BBox()
	for _, q := range quads[1:] {
		qx0, qy0, qx1, qy1 := q.BBox()
		if qx0 < minX {
			minX = qx0
		}
		if qy0 < minY {
			minY = qy0
		}
		if qx1 > maxX {
			maxX = qx1
		}
		if qy1 > maxY {
			maxY = qy1
		}
	}

	margin := border * float64(size)
	avail := float64(size) - 2*margin
	bw := maxX - minX
	bh := maxY - minY

	scale := avail / bw
	if s := avail / bh; s < scale {
		scale = s
	}

	return Placement{
		Scale:   scale,
		OffsetX: (float64(size) - bw*scale) / 2 - minX*scale,
		OffsetY: (float64(size) - bh*scale) / 2 - minY*scale,
	}
}

// Apply maps one quad through the placement.
func (p Placement) Apply(q geometry.Quad) geometry.Quad {
	var out geometry.Quad
	for i, pt := range q {
		out[i] = geometry.Point2{
			X: pt.X*p.Scale + p.OffsetX,
			Y: pt.Y*p.Scale + p.OffsetY,
		}
	}
	return out
}
