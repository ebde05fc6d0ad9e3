package puzzlesim

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// GridSize is the number of rows and columns of a board.
const GridSize = 6

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Index returns the row-major position of the cell in a flattened grid.
func (c Coord) Index() int {
	return c.Row*GridSize + c.Col
}

func (c Coord) inBounds() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// Grid is a board of cell symbols indexed [row][column]. It is a value
// type: assigning a Grid copies all 36 cells.
type Grid [GridSize][GridSize]byte

// At returns the symbol at c.
func (g *Grid) At(c Coord) byte {
	return g[c.Row][c.Col]
}

// Set stores symbol s at c.
func (g *Grid) Set(c Coord, s byte) {
	g[c.Row][c.Col] = s
}

// SampleGrid classifies a board image. The image is split into GridSize x
// GridSize cells of (height/GridSize) x (width/GridSize) pixels, any
// remainder on the bottom and right edges is ignored, and only the center
// pixel of each cell is sampled.
func SampleGrid(img image.Image, p Palette) Grid {
	bounds := img.Bounds()
	cellHeight, cellWidth := bounds.Dy()/GridSize, bounds.Dx()/GridSize

	var g Grid
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			y := bounds.Min.Y + i*cellHeight + cellHeight/2
			x := bounds.Min.X + j*cellWidth + cellWidth/2
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			g[i][j] = p.Classify(c)
		}
	}
	return g
}

// String renders the grid one row per line with symbols separated by a
// single space.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(GridSize * GridSize * 2)
	for i, row := range g {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, s := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(s)
		}
	}
	return sb.String()
}

// Flatten concatenates all symbols in row-major order.
func (g Grid) Flatten() string {
	b := make([]byte, GridSize*GridSize)
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			c := Coord{Row: i, Col: j}
			b[c.Index()] = g.At(c)
		}
	}
	return string(b)
}

// ParseGrid is the inverse of Flatten.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	if len(s) != GridSize*GridSize {
		return g, fmt.Errorf("grid must have %d cells, got %d",
			GridSize*GridSize, len(s))
	}
	for i := range s {
		g.Set(Coord{Row: i / GridSize, Col: i % GridSize}, s[i])
	}
	return g, nil
}
