package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrNoSpine is returned when the spine image list is empty.
var ErrNoSpine = errors.New("render: at least one spine image is required")

// ImageDimensionMismatchError reports a spine image whose height differs
// from the cover's. Heights must match before rendering; the core never
// rescales caller input.
type ImageDimensionMismatchError struct {
	Index  int // position in the spine list
	Height int
	Want   int
}

func (e *ImageDimensionMismatchError) Error() string {
	return fmt.Sprintf("render: spine image %d is %dpx tall, cover is %dpx", e.Index, e.Height, e.Want)
}

// buildSpineStack concatenates the spine images left-to-right into one
// texture. Each image keeps a sub-rectangle proportional to its pixel
// width, which equals its share of the physical spine thickness since
// cover and spines share one pixel-to-mm scale.
func buildSpineStack(spines []*image.NRGBA, coverHeight int) (*image.NRGBA, error) {
	if len(spines) == 0 {
		return nil, ErrNoSpine
	}

	total := 0
	for i, s := range spines {
		if s.Rect.Dy() != coverHeight {
			return nil, &ImageDimensionMismatchError{Index: i, Height: s.Rect.Dy(), Want: coverHeight}
		}
		total += s.Rect.Dx()
	}

	if len(spines) == 1 {
		return spines[0], nil
	}

	stack := imaging.New(total, coverHeight, color.NRGBA{})
	x := 0
	for _, s := range spines {
		stack = imaging.Paste(stack, s, image.Pt(x, 0))
		x += s.Rect.Dx()
	}
	return stack, nil
}
