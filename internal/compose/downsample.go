package compose

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a supersampled canvas to the target size with
// premultiplied-alpha CatmullRom filtering. Filtering straight NRGBA
// would bleed the color of fully transparent pixels into panel edges,
// so alpha is premultiplied first and divided back out after scaling.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	premul := image.NewRGBA(b)
	for i := 0; i < len(img.Pix); i += 4 {
		a := float64(img.Pix[i+3]) / 255
		premul.Pix[i] = uint8(float64(img.Pix[i])*a + 0.5)
		premul.Pix[i+1] = uint8(float64(img.Pix[i+1])*a + 0.5)
		premul.Pix[i+2] = uint8(float64(img.Pix[i+2])*a + 0.5)
		premul.Pix[i+3] = img.Pix[i+3]
	}

	scaled := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	out := image.NewNRGBA(scaled.Bounds())
	for i := 0; i < len(scaled.Pix); i += 4 {
		a := float64(scaled.Pix[i+3])
		if a > 1 {
			inv := 255 / a
			out.Pix[i] = clamp8(float64(scaled.Pix[i]) * inv)
			out.Pix[i+1] = clamp8(float64(scaled.Pix[i+1]) * inv)
			out.Pix[i+2] = clamp8(float64(scaled.Pix[i+2]) * inv)
		}
		out.Pix[i+3] = scaled.Pix[i+3]
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
