package geometry

// Point2 is a 2D image-plane point.
type Point2 struct {
	X, Y float64
}

// Quad is the 2D image of a Panel3D after projection, corner order
// matching Panel3D: top-left, top-right, bottom-right, bottom-left.
type Quad [4]Point2

// SignedArea is the shoelace area. Positive for the corner order above in
// y-down raster coordinates; the sign flips when a panel faces away.
func (q Quad) SignedArea() float64 {
	var s float64
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		s += q[i].X*q[j].Y - q[j].X*q[i].Y
	}
	return s / 2
}

// BBox returns the axis-aligned bounds as (minX, minY, maxX, maxY).
func (q Quad) BBox() (minX, minY, maxX, maxY float64) {
	minX, maxX = q[0].X, q[0].X
	minY, maxY = q[0].Y, q[0].Y
	for _, p := range q[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

// Width is the horizontal extent of the bounding box.
func (q Quad) Width() float64 {
	minX, _, maxX, _ := q.BBox()
	return maxX - minX
}

// Height is the vertical extent of the bounding box.
func (q Quad) Height() float64 {
	_, minY, _, maxY := q.BBox()
	return maxY - minY
}
