// Package render is the projective compositor: a pure function from
// render parameters plus source images to a finished RGBA canvas. It
// keeps no state between calls and performs no I/O, so concurrent
// renders need no coordination.
package render

import (
	"errors"
	"image"
	"math"

	"book3d-renderer/internal/camera"
	"book3d-renderer/internal/compose"
	"book3d-renderer/internal/geometry"
	"book3d-renderer/internal/params"
	"book3d-renderer/internal/shadow"
	"book3d-renderer/internal/warp"
)

// ErrEmptyCover is returned when the cover image has no pixels.
var ErrEmptyCover = errors.New("render: cover image is empty")

// Render builds the 3D book illusion from a cover image and an ordered
// spine stack. The result is FinalSize×FinalSize with a meaningful alpha
// channel when BgAlpha < 100. Inputs are read-only; repeated calls with
// identical inputs produce byte-identical output.
func Render(p params.RenderParams, cover *image.NRGBA, spines []*image.NRGBA) (*image.NRGBA, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if cover == nil || cover.Rect.Dx() == 0 || cover.Rect.Dy() == 0 {
		return nil, ErrEmptyCover
	}

	stack, err := buildSpineStack(spines, cover.Rect.Dy())
	if err != nil {
		return nil, err
	}

	// Physical dimensions. The cover image's aspect ratio fixes the book
	// height; the shared pixel-to-mm scale converts the stack width.
	coverW := p.CoverWidth
	coverH := coverW * float64(cover.Rect.Dy()) / float64(cover.Rect.Dx())
	pxPerMM := float64(cover.Rect.Dx()) / coverW
	spineW := float64(stack.Rect.Dx()) / pxPerMM

	book := geometry.Build(geometry.Spec{
		CoverWidth:       coverW,
		CoverHeight:      coverH,
		SpineWidth:       spineW,
		BookType:         p.BookType,
		WidthStretch:     p.SpineWidthStretch,
		PerspectiveAngle: p.PerspectiveAngle,
		SpineSpreadAngle: p.SpineSpreadAngle,
	})

	cam := camera.New(p.BookDistance, p.CameraHeightRatio, book.Height)
	coverQuad, spineQuad, err := cam.ProjectBook(book)
	if err != nil {
		return nil, err
	}

	size := p.FinalSize * p.Supersample
	place := compose.Fit([]geometry.Quad{coverQuad, spineQuad}, size, p.BorderPercentage)
	coverQuad = place.Apply(coverQuad)
	spineQuad = place.Apply(spineQuad)

	spineLayer, err := warp.Panel(stack, spineQuad, size, size, "spine")
	if err != nil {
		return nil, err
	}
	shadow.Apply(spineLayer, quadRect(spineQuad), p.ShadowMode)

	coverLayer, err := warp.Panel(cover, coverQuad, size, size, "cover")
	if err != nil {
		return nil, err
	}

	canvas := compose.NewCanvas(size, p.BgColor, p.BgAlpha)
	compose.Overlay(canvas, spineLayer)
	compose.Overlay(canvas, coverLayer)

	if p.StrokeEnabled {
		compose.StrokeQuad(canvas, coverQuad, 2*p.Supersample)
	}

	if p.Supersample > 1 {
		canvas = compose.Downsample(canvas, p.FinalSize)
	}
	return canvas, nil
}

// quadRect is the quad's bounding box as an integer rectangle.
func quadRect(q geometry.Quad) image.Rectangle {
	minX, minY, maxX, maxY := q.BBox()
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}
