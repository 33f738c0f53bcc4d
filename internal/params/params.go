// Package params defines the render configuration shared by the CLI,
// the HTTP layer, and the core pipeline.
package params

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// BookType selects the spine thickness model.
type BookType string

const (
	Paperback BookType = "paperback"
	Hardcover BookType = "hardcover"
)

// ShadowMode selects the gradient blended over the warped spine.
type ShadowMode string

const (
	ShadowNone    ShadowMode = "none"
	ShadowLinear  ShadowMode = "linear"
	ShadowReflect ShadowMode = "reflect"
)

// RenderParams is the full render configuration. Values are validated by
// Validate before any geometry is built; the pipeline never clamps.
type RenderParams struct {
	PerspectiveAngle  float64    // degrees, book rotation toward the camera
	SpineSpreadAngle  float64    // degrees, extra spine opening
	BookDistance      float64    // mm, camera to hinge
	CoverWidth        float64    // mm, physical cover width
	CameraHeightRatio float64    // 0 = bottom edge, 1 = top edge
	FinalSize         int        // px, square output side
	BorderPercentage  float64    // margin fraction of FinalSize per side
	BgColor           color.NRGBA
	BgAlpha           int        // 0-100, background opacity
	BookType          BookType
	ShadowMode        ShadowMode
	SpineWidthStretch float64    // 1.0-2.0, visual spine widening
	StrokeEnabled     bool       // outline the cover panel
	Supersample       int        // 1-4, antialiasing factor
}

// Default returns the parameter set the original tool ships with.
func Default() RenderParams {
	return RenderParams{
		PerspectiveAngle:  35,
		SpineSpreadAngle:  0,
		BookDistance:      800,
		CoverWidth:        187,
		CameraHeightRatio: 0.5,
		FinalSize:         1200,
		BorderPercentage:  0.1,
		BgColor:           color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		BgAlpha:           100,
		BookType:          Paperback,
		ShadowMode:        ShadowLinear,
		SpineWidthStretch: 1.0,
		Supersample:       1,
	}
}

// InvalidParameterError reports a configuration value outside its range.
type InvalidParameterError struct {
	Field string
	Value any
	Range string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("params: %s = %v outside valid range %s", e.Field, e.Value, e.Range)
}

// Validate checks every field against its documented range. PerspectiveAngle
// exactly 0 or 90 passes here; those collapse a panel and are rejected as
// degenerate geometry once the quads are built.
func (p RenderParams) Validate() error {
	switch {
	case p.PerspectiveAngle < 0 || p.PerspectiveAngle > 90:
		return &InvalidParameterError{"perspective_angle", p.PerspectiveAngle, "[0, 90]"}
	case p.SpineSpreadAngle < 0:
		return &InvalidParameterError{"spine_spread_angle", p.SpineSpreadAngle, "[0, inf)"}
	case p.BookDistance <= 0:
		return &InvalidParameterError{"book_distance", p.BookDistance, "(0, inf)"}
	case p.CoverWidth <= 0:
		return &InvalidParameterError{"cover_width", p.CoverWidth, "(0, inf)"}
	case p.CameraHeightRatio < 0 || p.CameraHeightRatio > 1:
		return &InvalidParameterError{"camera_height_ratio", p.CameraHeightRatio, "[0, 1]"}
	case p.FinalSize < 16:
		return &InvalidParameterError{"final_size", p.FinalSize, "[16, inf)"}
	case p.BorderPercentage < 0 || p.BorderPercentage > 0.2:
		return &InvalidParameterError{"border_percentage", p.BorderPercentage, "[0, 0.2]"}
	case p.BgAlpha < 0 || p.BgAlpha > 100:
		return &InvalidParameterError{"bg_alpha", p.BgAlpha, "[0, 100]"}
	case p.SpineWidthStretch < 1 || p.SpineWidthStretch > 2:
		return &InvalidParameterError{"spine_width_stretch", p.SpineWidthStretch, "[1, 2]"}
	case p.Supersample < 1 || p.Supersample > 4:
		return &InvalidParameterError{"supersample", p.Supersample, "[1, 4]"}
	}

	switch p.BookType {
	case Paperback, Hardcover:
	default:
		return &InvalidParameterError{"book_type", string(p.BookType), "paperback|hardcover"}
	}

	switch p.ShadowMode {
	case ShadowNone, ShadowLinear, ShadowReflect:
	default:
		return &InvalidParameterError{"shadow_mode", string(p.ShadowMode), "none|linear|reflect"}
	}

	return nil
}

// ParseHexColor converts "#rrggbb" (leading '#' optional) to an opaque NRGBA.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.NRGBA{}, &InvalidParameterError{"bg_color", s, "#rrggbb"}
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, &InvalidParameterError{"bg_color", s, "#rrggbb"}
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
