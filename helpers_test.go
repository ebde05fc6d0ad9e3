package puzzlesim

import (
	"image/color"
	"testing"

	"github.com/fspv/hamster-kombat-puzzle-sim/imageutil"
)

// symbolColors paints board test images; every symbol classifies back to
// itself with the default palette.
var symbolColors = map[byte]color.NRGBA{
	SymbolYellow: {R: 255, G: 255, A: 255},
	SymbolRed:    {R: 255, A: 255},
	SymbolGreen:  {G: 255, A: 255},
	SymbolEmpty:  {},
}

// boardImage draws one uniformly colored cellSize square per symbol of a
// 36 character board description.
func boardImage(t *testing.T, desc string, cellSize int) *imageutil.NRGBAImage {
	t.Helper()
	g := mustGrid(t, desc)

	colors := make([][]color.NRGBA, GridSize)
	for i, row := range g {
		colors[i] = make([]color.NRGBA, GridSize)
		for j, s := range row {
			c, ok := symbolColors[s]
			if !ok {
				t.Fatalf("no test color for symbol %q", s)
			}
			colors[i][j] = c
		}
	}
	return imageutil.CreateGridImage(colors, cellSize, cellSize)
}

func mustGrid(t *testing.T, desc string) Grid {
	t.Helper()
	g, err := ParseGrid(desc)
	if err != nil {
		t.Fatal(err)
	}
	return g
}
