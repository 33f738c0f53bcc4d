// Package imgio decodes source images and encodes render output. This is
// collaborator territory: the core pipeline itself never touches files.
package imgio

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/ftrvxmtrx/tga"

	"github.com/HugoSmits86/nativewebp"
)

// Load reads and decodes a PNG, JPEG, or TGA file into NRGBA.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgio: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imgio: decode %s: %w", path, err)
	}
	return img, nil
}

// Decode reads one image from r into NRGBA.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return ToNRGBA(img), nil
}

// ToNRGBA converts any decoded image to NRGBA, reusing the pixels when
// it already is one.
func ToNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Save encodes img to path, picking the codec from the extension:
// .webp uses nativewebp, everything else is written as PNG.
func Save(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgio: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("imgio: webp encode %s: %w", path, err)
		}
	default:
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("imgio: png encode %s: %w", path, err)
		}
	}
	return nil
}
