package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"book3d-renderer/internal/config"
	"book3d-renderer/internal/imgio"
	"book3d-renderer/internal/params"
	"book3d-renderer/internal/render"
)

func main() {
	var spinePaths []string

	coverPath := flag.String("cover", "", "Cover image path (PNG/JPEG/TGA)")
	flag.Func("spine", "Spine image path, repeat for a multi-spine stack", func(v string) error {
		spinePaths = append(spinePaths, v)
		return nil
	})
	outputPath := flag.String("output", "", "Output image path (.png or .webp)")
	configFile := flag.String("config", "", "JSON config file; explicit flags override it")

	perspective := flag.Float64("perspective", 35, "Rotation angle in degrees (0-90)")
	distance := flag.Float64("distance", 800, "Camera-to-book distance in mm")
	width := flag.Float64("width", 187, "Physical cover width in mm")
	bgColor := flag.String("bg-color", "#ffffff", "Background color as #rrggbb")
	bgAlpha := flag.Int("bg-alpha", 100, "Background opacity 0-100")
	spread := flag.Float64("spread", 0, "Extra spine opening angle in degrees")
	camHeight := flag.Float64("camera-height", 0.5, "Camera height ratio 0-1")
	finalSize := flag.Int("size", 1200, "Output canvas side in px")
	border := flag.Float64("border", 0.1, "Margin fraction of the canvas (0-0.2)")
	bookType := flag.String("book-type", "paperback", "paperback or hardcover")
	shadowMode := flag.String("shadow", "linear", "Spine shadow: none, linear or reflect")
	stretch := flag.Float64("stretch", 1.0, "Spine width stretch 1.0-2.0")
	stroke := flag.Bool("stroke", false, "Outline the cover panel")
	supersample := flag.Int("supersample", 1, "Antialiasing factor 1-4")

	flag.Parse()

	p := params.Default()

	// Load config file first; explicitly set flags win below.
	if *configFile != "" {
		cfg, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Apply(&p); err != nil {
			fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
			os.Exit(1)
		}
		if *coverPath == "" {
			*coverPath = cfg.Cover
		}
		if len(spinePaths) == 0 {
			spinePaths = cfg.Spines
		}
		if *outputPath == "" {
			*outputPath = cfg.Output
		}
	}

	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "perspective":
			p.PerspectiveAngle = *perspective
		case "distance":
			p.BookDistance = *distance
		case "width":
			p.CoverWidth = *width
		case "bg-color":
			c, err := params.ParseHexColor(*bgColor)
			if err != nil {
				flagErr = err
				return
			}
			p.BgColor = c
		case "bg-alpha":
			p.BgAlpha = *bgAlpha
		case "spread":
			p.SpineSpreadAngle = *spread
		case "camera-height":
			p.CameraHeightRatio = *camHeight
		case "size":
			p.FinalSize = *finalSize
		case "border":
			p.BorderPercentage = *border
		case "book-type":
			p.BookType = params.BookType(*bookType)
		case "shadow":
			p.ShadowMode = params.ShadowMode(*shadowMode)
		case "stretch":
			p.SpineWidthStretch = *stretch
		case "stroke":
			p.StrokeEnabled = *stroke
		case "supersample":
			p.Supersample = *supersample
		}
	})
	if flagErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", flagErr)
		os.Exit(1)
	}

	if *coverPath == "" || len(spinePaths) == 0 || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -cover, -spine and -output are required")
		flag.Usage()
		os.Exit(1)
	}

	cover, err := imgio.Load(*coverPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	spines := make([]*image.NRGBA, 0, len(spinePaths))
	for _, path := range spinePaths {
		s, err := imgio.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		spines = append(spines, s)
	}

	fmt.Printf("Rendering %s + %d spine image(s) at %v°...\n",
		*coverPath, len(spines), p.PerspectiveAngle)
	start := time.Now()

	img, err := render.Render(p, cover, spines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}

	if err := imgio.Save(*outputPath, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done in %.2fs → %s\n", time.Since(start).Seconds(), *outputPath)
}
