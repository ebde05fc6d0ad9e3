package puzzlesim

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// Cell symbols produced by the classifier. Yellow cells and anything the
// classifier cannot place share the 'A' symbol.
const (
	SymbolYellow byte = 'A'
	SymbolRed    byte = 'R'
	SymbolGreen  byte = 'V'
	SymbolEmpty  byte = 'o'
)

// DefaultThreshold is the maximum RGB distance (exclusive) at which a pixel
// still matches a reference color.
const DefaultThreshold = 90.0

// Palette holds the reference colors a sampled pixel is compared against.
// Only the RGB channels of the reference colors are used.
type Palette struct {
	Yellow    color.NRGBA
	Red       color.NRGBA
	Green     color.NRGBA
	Empty     color.NRGBA
	Threshold float64
}

// DefaultPalette returns the pure yellow, red and green piece colors and the
// dark gray of an empty board cell.
func DefaultPalette() Palette {
	return Palette{
		Yellow:    color.NRGBA{R: 255, G: 255, B: 0, A: 255},
		Red:       color.NRGBA{R: 255, G: 0, B: 0, A: 255},
		Green:     color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		Empty:     color.NRGBA{R: 40, G: 36, B: 36, A: 255},
		Threshold: DefaultThreshold,
	}
}

// PaletteFromHex builds a Palette from "#rrggbb" reference colors.
func PaletteFromHex(yellow, red, green, empty string, threshold float64) (Palette, error) {
	if !(threshold > 0) {
		return Palette{}, fmt.Errorf("threshold must be positive, got %v", threshold)
	}

	p := Palette{Threshold: threshold}
	for _, ref := range []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"yellow", yellow, &p.Yellow},
		{"red", red, &p.Red},
		{"green", green, &p.Green},
		{"empty", empty, &p.Empty},
	} {
		c, err := colorful.Hex(ref.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("parse %s color: %w", ref.name, err)
		}
		r, g, b := c.RGB255()
		*ref.dst = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return p, nil
}

// Classify maps a pixel to a cell symbol. Yellow wins over red, red over
// green, and green over empty; a fully transparent pixel is empty unless it
// matched one of the piece colors first. Everything else falls back to
// SymbolYellow.
func (p Palette) Classify(c color.NRGBA) byte {
	switch {
	case p.near(c, p.Yellow):
		return SymbolYellow
	case p.near(c, p.Red):
		return SymbolRed
	case p.near(c, p.Green):
		return SymbolGreen
	case c.A == 0 || p.near(c, p.Empty):
		return SymbolEmpty
	default:
		return SymbolYellow
	}
}

func (p Palette) near(c, ref color.NRGBA) bool {
	return colorDistance(c, ref) < p.Threshold
}

// colorDistance calculates the Euclidean distance between the RGB channels
// of two colors; alpha is ignored. The squared sum is exact for 8-bit
// channels, so the result is the correctly rounded square root and exact
// threshold comparisons behave.
func colorDistance(a, b color.NRGBA) float64 {
	d := floats.SubTo(make([]float64, 3),
		[]float64{float64(a.R), float64(a.G), float64(a.B)},
		[]float64{float64(b.R), float64(b.G), float64(b.B)},
	)
	return math.Sqrt(floats.Dot(d, d))
}
