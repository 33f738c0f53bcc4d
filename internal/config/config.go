// Package config reads the JSON configuration consumed by the CLIs and
// overlays it onto the default render parameters. The core never sees
// this layer; it receives a validated params.RenderParams.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"book3d-renderer/internal/params"
)

// File mirrors the render parameter surface as an optional-field JSON
// document. Unset fields keep their defaults, so a config file only
// needs the values it wants to change. The same shape describes one job
// in a batch jobs file, where Cover/Spines/Output are required.
type File struct {
	Cover  string   `json:"cover,omitempty"`
	Spines []string `json:"spines,omitempty"`
	Output string   `json:"output,omitempty"`

	PerspectiveAngle  *float64 `json:"perspective_angle,omitempty"`
	SpineSpreadAngle  *float64 `json:"spine_spread_angle,omitempty"`
	BookDistance      *float64 `json:"book_distance,omitempty"`
	CoverWidth        *float64 `json:"cover_width,omitempty"`
	CameraHeightRatio *float64 `json:"camera_height_ratio,omitempty"`
	FinalSize         *int     `json:"final_size,omitempty"`
	BorderPercentage  *float64 `json:"border_percentage,omitempty"`
	BgColor           *string  `json:"bg_color,omitempty"`
	BgAlpha           *int     `json:"bg_alpha,omitempty"`
	BookType          *string  `json:"book_type,omitempty"`
	ShadowMode        *string  `json:"shadow_mode,omitempty"`
	SpineWidthStretch *float64 `json:"spine_width_stretch,omitempty"`
	StrokeEnabled     *bool    `json:"stroke_enabled,omitempty"`
	Supersample       *int     `json:"supersample,omitempty"`
}

// Load reads a single-render config file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f, nil
}

// LoadJobs reads a batch jobs file: a JSON array of File entries.
func LoadJobs(path string) ([]File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var jobs []File
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return jobs, nil
}

// Apply overlays every set field onto p. Range checking stays with
// params.Validate; only bg_color is parsed here.
func (f File) Apply(p *params.RenderParams) error {
	if f.PerspectiveAngle != nil {
		p.PerspectiveAngle = *f.PerspectiveAngle
	}
	if f.SpineSpreadAngle != nil {
		p.SpineSpreadAngle = *f.SpineSpreadAngle
	}
	if f.BookDistance != nil {
		p.BookDistance = *f.BookDistance
	}
	if f.CoverWidth != nil {
		p.CoverWidth = *f.CoverWidth
	}
	if f.CameraHeightRatio != nil {
		p.CameraHeightRatio = *f.CameraHeightRatio
	}
	if f.FinalSize != nil {
		p.FinalSize = *f.FinalSize
	}
	if f.BorderPercentage != nil {
		p.BorderPercentage = *f.BorderPercentage
	}
	if f.BgColor != nil {
		c, err := params.ParseHexColor(*f.BgColor)
		if err != nil {
			return err
		}
		p.BgColor = c
	}
	if f.BgAlpha != nil {
		p.BgAlpha = *f.BgAlpha
	}
	if f.BookType != nil {
		p.BookType = params.BookType(*f.BookType)
	}
	if f.ShadowMode != nil {
		p.ShadowMode = params.ShadowMode(*f.ShadowMode)
	}
	if f.SpineWidthStretch != nil {
		p.SpineWidthStretch = *f.SpineWidthStretch
	}
	if f.StrokeEnabled != nil {
		p.StrokeEnabled = *f.StrokeEnabled
	}
	if f.Supersample != nil {
		p.Supersample = *f.Supersample
	}
	return nil
}

// Params returns the defaults with this file's overrides applied.
func (f File) Params() (params.RenderParams, error) {
	p := params.Default()
	if err := f.Apply(&p); err != nil {
		return p, err
	}
	return p, nil
}
