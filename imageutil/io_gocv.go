//go:build gocv

package imageutil

import (
	"fmt"
	"image/color"

	"gocv.io/x/gocv"
)

// GocvDecoder is the name under which the OpenCV backed decoder registers.
const GocvDecoder = "gocv"

func init() {
	RegisterDecoder(GocvDecoder, LoadImageGocv)
}

// LoadImageGocv loads an image with OpenCV. The file is read unchanged so
// that a fourth (alpha) channel survives; 3-channel images are treated as
// opaque and single-channel images as opaque gray.
func LoadImageGocv(path string) (*NRGBAImage, error) {
	mat := gocv.IMRead(path, gocv.IMReadUnchanged)
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("failed to decode image: could not read %s", path)
	}

	switch depth := mat.Type() & matDepthMask; depth {
	case gocv.MatTypeCV8U:
	case gocv.MatTypeCV16U:
		// 16-bit PNG and TIFF files keep their depth when read unchanged
		conv := gocv.NewMat()
		defer conv.Close()
		mat.ConvertToWithParams(&conv, gocv.MatTypeCV8U, 1.0/257, 0)
		if conv.Empty() {
			return nil, fmt.Errorf("failed to decode image: could not convert 16-bit %s", path)
		}
		return nrgbaFromMat(conv)
	default:
		return nil, fmt.Errorf("failed to decode image: unsupported depth %d", depth)
	}
	return nrgbaFromMat(mat)
}

// matDepthMask extracts the element depth from an OpenCV type code.
const matDepthMask gocv.MatType = 7

// nrgbaFromMat converts an 8-bit gocv.Mat (BGR, BGRA or gray) to an
// NRGBAImage.
func nrgbaFromMat(mat gocv.Mat) (*NRGBAImage, error) {
	height, width, channels := mat.Rows(), mat.Cols(), mat.Channels()
	if channels != 1 && channels != 3 && channels != 4 {
		return nil, fmt.Errorf("failed to decode image: unsupported channel count %d", channels)
	}

	img := NewNRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.NRGBA
			switch channels {
			case 1:
				v := mat.GetUCharAt(y, x)
				c = color.NRGBA{R: v, G: v, B: v, A: 255}
			default:
				// gocv uses BGR(A) ordering
				vec := mat.GetVecbAt(y, x)
				c = color.NRGBA{R: vec[2], G: vec[1], B: vec[0], A: 255}
				if channels == 4 {
					c.A = vec[3]
				}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img, nil
}
