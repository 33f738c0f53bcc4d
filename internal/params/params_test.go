package params

import (
	"errors"
	"image/color"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RenderParams)
		field  string
	}{
		{"angle negative", func(p *RenderParams) { p.PerspectiveAngle = -1 }, "perspective_angle"},
		{"angle above 90", func(p *RenderParams) { p.PerspectiveAngle = 90.5 }, "perspective_angle"},
		{"spread negative", func(p *RenderParams) { p.SpineSpreadAngle = -0.1 }, "spine_spread_angle"},
		{"distance zero", func(p *RenderParams) { p.BookDistance = 0 }, "book_distance"},
		{"width zero", func(p *RenderParams) { p.CoverWidth = 0 }, "cover_width"},
		{"height ratio above 1", func(p *RenderParams) { p.CameraHeightRatio = 1.2 }, "camera_height_ratio"},
		{"final size tiny", func(p *RenderParams) { p.FinalSize = 8 }, "final_size"},
		{"border above 0.2", func(p *RenderParams) { p.BorderPercentage = 0.3 }, "border_percentage"},
		{"bg alpha above 100", func(p *RenderParams) { p.BgAlpha = 101 }, "bg_alpha"},
		{"stretch below 1", func(p *RenderParams) { p.SpineWidthStretch = 0.9 }, "spine_width_stretch"},
		{"stretch above 2", func(p *RenderParams) { p.SpineWidthStretch = 2.5 }, "spine_width_stretch"},
		{"supersample zero", func(p *RenderParams) { p.Supersample = 0 }, "supersample"},
		{"bad book type", func(p *RenderParams) { p.BookType = "leather" }, "book_type"},
		{"bad shadow mode", func(p *RenderParams) { p.ShadowMode = "drop" }, "shadow_mode"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Default()
			tc.mutate(&p)
			err := p.Validate()
			var invalid *InvalidParameterError
			if !errors.As(err, &invalid) {
				t.Fatalf("Validate() = %v, want InvalidParameterError", err)
			}
			if invalid.Field != tc.field {
				t.Errorf("Field = %q, want %q", invalid.Field, tc.field)
			}
		})
	}
}

func TestValidateBoundaryAnglesPass(t *testing.T) {
	// 0 and 90 pass validation; they fail later as degenerate geometry.
	for _, a := range []float64{0, 90} {
		p := Default()
		p.PerspectiveAngle = a
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() with angle %v = %v, want nil", a, err)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	got, err := ParseHexColor("#3fa2c4")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	want := color.NRGBA{R: 0x3f, G: 0xa2, B: 0xc4, A: 255}
	if got != want {
		t.Errorf("ParseHexColor(#3fa2c4) = %v, want %v", got, want)
	}

	if _, err := ParseHexColor("ffffff"); err != nil {
		t.Errorf("ParseHexColor without # = %v, want nil", err)
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) = nil error, want error", bad)
		}
	}
}
