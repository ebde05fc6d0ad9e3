// Package imageutil provides pure Go image loading and pixel access for
// board screenshots, with an optional gocv (OpenCV) backed decoder.
package imageutil

import (
	"image"
	"image/color"
)

// NRGBAImage wraps image.NRGBA with convenience methods for pixel access.
// Colors are stored non-premultiplied, so a translucent pixel keeps the
// channel values that were written to the file.
type NRGBAImage struct {
	*image.NRGBA
}

// NewNRGBAImage creates a new, fully transparent NRGBAImage with the
// specified dimensions.
func NewNRGBAImage(width, height int) *NRGBAImage {
	return &NRGBAImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// NRGBAImageFromImage converts any image.Image to an NRGBAImage whose
// bounds start at the origin.
func NRGBAImageFromImage(img image.Image) *NRGBAImage {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return &NRGBAImage{NRGBA: n}
	}

	bounds := img.Bounds()
	nrgba := NewNRGBAImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			nrgba.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}
	return nrgba
}

// Width returns the image width.
func (img *NRGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *NRGBAImage) Height() int {
	return img.Bounds().Dy()
}

// Fill paints every pixel of the rectangle r (clipped to the image) with c.
func (img *NRGBAImage) Fill(r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
