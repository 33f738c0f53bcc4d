package compose

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"book3d-renderer/internal/geometry"
)

// strokeColor is the light paper-edge tone used for the cover outline.
var strokeColor = color.NRGBA{R: 235, G: 235, B: 233, A: 255}

// NewCanvas returns a size×size canvas filled with bg at the given
// opacity (0-100). Opacity below 100 keeps a real alpha channel so the
// background can be exported transparent instead of pre-blended.
func NewCanvas(size int, bg color.NRGBA, opacity int) *image.NRGBA {
	a := uint8(float64(opacity)*255/100 + 0.5)
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(canvas.Pix); i += 4 {
		canvas.Pix[i] = bg.R
		canvas.Pix[i+1] = bg.G
		canvas.Pix[i+2] = bg.B
		canvas.Pix[i+3] = a
	}
	return canvas
}

// Overlay composites a panel layer over the canvas with source-over.
func Overlay(dst, layer *image.NRGBA) {
	draw.Draw(dst, dst.Bounds(), layer, image.Point{}, draw.Over)
}

// StrokeQuad draws an outline of the given width along the quad boundary.
// Drawn after background fill and panel compositing, before encoding.
func StrokeQuad(dst *image.NRGBA, q geometry.Quad, width int) {
	for i := 0; i < 4; i++ {
		a := q[i]
		b := q[(i+1)%4]
		strokeSegment(dst, a, b, width)
	}
}

func strokeSegment(dst *image.NRGBA, a, b geometry.Point2, width int) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return
	}

	steps := int(length*2) + 1
	half := float64(width) / 2
	bounds := dst.Bounds()

	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		cx := a.X + dx*t
		cy := a.Y + dy*t
		x0 := int(math.Floor(cx - half))
		y0 := int(math.Floor(cy - half))
		x1 := int(math.Ceil(cx + half))
		y1 := int(math.Ceil(cy + half))
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
					continue
				}
				i := dst.PixOffset(x, y)
				dst.Pix[i] = strokeColor.R
				dst.Pix[i+1] = strokeColor.G
				dst.Pix[i+2] = strokeColor.B
				dst.Pix[i+3] = strokeColor.A
			}
		}
	}
}
