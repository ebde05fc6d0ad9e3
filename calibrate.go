package puzzlesim

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// PaletteMethod selects how ExtractPalette finds the prominent colors of a
// board image.
type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// ParsePaletteMethod maps "kmeans" and "dominantcolor" to a PaletteMethod.
func ParsePaletteMethod(s string) (PaletteMethod, bool) {
	switch s {
	case "kmeans":
		return PaletteMethodKMeans, true
	case "dominantcolor", "":
		return PaletteMethodDominantColor, true
	}
	return PaletteMethodDominantColor, false
}

// Swatch is one extracted color with its share of the sampled pixels and
// the symbol the palette assigns it.
type Swatch struct {
	Color  colorful.Color
	Weight float64
	Symbol byte
}

// ExtractPalette returns up to k prominent colors of img, most common
// first. The k-means method falls back to dominantcolor when it yields
// nothing.
func ExtractPalette(img image.Image, k int, method PaletteMethod) []colorful.Color {
	swatches := extractWeighted(img, k, method)
	if len(swatches) == 0 {
		return nil
	}
	out := make([]colorful.Color, len(swatches))
	for i, s := range swatches {
		out[i] = s.Color
	}
	return out
}

// Calibrate extracts up to k prominent colors of img and classifies each
// with p, which shows how the palette sees a board before tuning it.
func Calibrate(img image.Image, k int, method PaletteMethod, p Palette) []Swatch {
	swatches := extractWeighted(img, k, method)
	for i := range swatches {
		r, g, b := swatches[i].Color.Clamped().RGB255()
		swatches[i].Symbol = p.Classify(color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return swatches
}

func extractWeighted(img image.Image, k int, method PaletteMethod) []Swatch {
	if k <= 0 {
		return nil
	}
	var swatches []Swatch
	if method == PaletteMethodKMeans {
		swatches = kmeansSwatches(img, k)
	}
	if len(swatches) == 0 {
		swatches = dominantSwatches(img, k)
	}

	total := 0.0
	for _, s := range swatches {
		total += s.Weight
	}
	if total > 0 {
		for i := range swatches {
			swatches[i].Weight /= total
		}
	}
	return swatches
}

func dominantSwatches(img image.Image, k int) []Swatch {
	candidates := dominantcolor.FindWeight(img, k)
	swatches := make([]Swatch, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		swatches = append(swatches, Swatch{Color: col.Clamped(), Weight: c.Weight})
	}
	sortSwatches(swatches)
	return swatches
}

func kmeansSwatches(img image.Image, k int) []Swatch {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	// Subsample to keep kmeans tractable on large screenshots.
	maxSamples := 12000
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			// un-premultiply so translucent pixels cluster by their color
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / float64(a16),
				float64(g16) / float64(a16),
				float64(b16) / float64(a16),
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, min(k, len(dataset)))
	if err != nil || len(cc) == 0 {
		return nil
	}

	swatches := make([]Swatch, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		swatches = append(swatches, Swatch{Color: col, Weight: float64(len(c.Observations))})
	}
	sortSwatches(swatches)
	return swatches
}

func sortSwatches(swatches []Swatch) {
	slices.SortStableFunc(swatches, func(a, b Swatch) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		}
		return 0
	})
}
