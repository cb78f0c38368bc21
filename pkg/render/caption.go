package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Caption draws text in the bottom-left corner of img on a dark band.
func Caption(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}

	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	pad := 6
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.White), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6

	bg := image.NewUniform(color.RGBA{A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)

	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
