package imageutil

import (
	"image"
	"image/color"
)

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c color.NRGBA) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	img.Fill(img.Bounds(), c)
	return img
}

// CreateTransparentImage creates a fully transparent image. The color
// channels are left at zero.
func CreateTransparentImage(width, height int) *NRGBAImage {
	return NewNRGBAImage(width, height)
}

// CreateGridImage creates an image made of uniformly colored rectangular
// cells. colors is indexed [row][column]; rows may differ in length, missing
// cells stay transparent.
func CreateGridImage(colors [][]color.NRGBA, cellWidth, cellHeight int) *NRGBAImage {
	cols := 0
	for _, row := range colors {
		if len(row) > cols {
			cols = len(row)
		}
	}

	img := NewNRGBAImage(cols*cellWidth, len(colors)*cellHeight)
	for r, row := range colors {
		for c, col := range row {
			img.Fill(image.Rect(
				c*cellWidth, r*cellHeight,
				(c+1)*cellWidth, (r+1)*cellHeight,
			), col)
		}
	}
	return img
}

// CalculateMaxDiff calculates the maximum channel difference, alpha
// included, between two images.
func CalculateMaxDiff(img1, img2 *NRGBAImage) int {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return 256
	}

	maxDiff := 0
	for i := range img1.Pix {
		d := abs(int(img1.Pix[i]) - int(img2.Pix[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
