package render

import (
	"image"
	"image/color"
)

// Grayscale converts img to 8-bit gray for print-friendly charts.
func Grayscale(img image.Image) image.Image {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, img.At(x, y))
		}
	}

	return gray
}

// Contrast scales every channel away from middle gray by factor. A factor of
// 1 returns img unchanged.
func Contrast(img image.Image, factor float64) image.Image {
	if factor == 1 || factor <= 0 {
		return img
	}

	bounds := img.Bounds()
	adjusted := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()

			adjusted.SetRGBA(x, y, color.RGBA{
				R: contrastChannel(uint8(r>>8), factor),
				G: contrastChannel(uint8(g>>8), factor),
				B: contrastChannel(uint8(b>>8), factor),
				A: uint8(a >> 8),
			})
		}
	}

	return adjusted
}

func contrastChannel(value uint8, factor float64) uint8 {
	adjusted := (float64(value)-128)*factor + 128

	if adjusted < 0 {
		return 0
	}
	if adjusted > 255 {
		return 255
	}

	return uint8(adjusted)
}

// postProcess applies the raster options to a rendered PNG.
func postProcess(img image.Image, opts ImageOptions) image.Image {
	img = Contrast(img, opts.Contrast)
	if opts.Grayscale {
		img = Grayscale(img)
	}
	return Caption(img, opts.Caption)
}
