package puzzlesim

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/fspv/hamster-kombat-puzzle-sim/imageutil"
)

// PreviewColors are the fills used when drawing a labeled board.
type PreviewColors struct {
	Board      color.NRGBA
	Primary    color.NRGBA
	Piece      color.NRGBA
	Horizontal color.NRGBA
	Vertical   color.NRGBA
	Wall       color.NRGBA
	Text       color.NRGBA
}

// DefaultPreviewColors matches the colors of the game board.
func DefaultPreviewColors() PreviewColors {
	return PreviewColors{
		Board:      hexNRGBA("#3d3d3d"),
		Primary:    hexNRGBA("#dfff00"),
		Piece:      hexNRGBA("#338899"),
		Horizontal: hexNRGBA("#02dc60"),
		Vertical:   hexNRGBA("#fe1e09"),
		Wall:       hexNRGBA("#222222"),
		Text:       hexNRGBA("#222222"),
	}
}

// hexNRGBA parses a constant "#rrggbb" color and panics if it is malformed.
func hexNRGBA(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("invalid preview color %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// RenderPreview draws a labeled grid, one GlyphWidth*scale square per cell.
// Cells of a horizontal group are filled with the horizontal piece color,
// cells of a vertical group with the vertical one; ungrouped cells are
// board, wall, primary or plain piece colored by their symbol. Every
// non-empty cell carries its letter.
func RenderPreview(g Grid, groups []Group, glyphs *Glyphs, colors PreviewColors, scale int) *imageutil.NRGBAImage {
	if scale < 1 {
		scale = 1
	}
	cellSize := GlyphWidth * scale

	fills := make(map[Coord]color.NRGBA)
	for _, group := range groups {
		fill := colors.Vertical
		if group.Horizontal() {
			fill = colors.Horizontal
		}
		for _, c := range group.Cells {
			fills[c] = fill
		}
	}

	img := imageutil.NewNRGBAImage(GridSize*cellSize, GridSize*cellSize)
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			c := Coord{Row: i, Col: j}
			symbol := g.At(c)

			fill, grouped := fills[c]
			if !grouped {
				fill = colors.cellFill(symbol)
			}
			x, y := j*cellSize, i*cellSize
			img.Fill(image.Rect(x, y, x+cellSize, y+cellSize), fill)

			if symbol == BoardEmpty || symbol == BoardEmptyAlt || glyphs == nil {
				continue
			}
			if bitmap, ok := glyphs.Glyph(symbol); ok {
				renderBitmap(img, bitmap, x, y, scale, colors.Text)
			}
		}
	}
	return img
}

func (pc PreviewColors) cellFill(symbol byte) color.NRGBA {
	switch symbol {
	case BoardEmpty, BoardEmptyAlt:
		return pc.Board
	case BoardWall:
		return pc.Wall
	case SymbolYellow:
		return pc.Primary
	default:
		return pc.Piece
	}
}

// renderBitmap paints the set bits of a glyph, scaled, over whatever is
// already in the image.
func renderBitmap(img *imageutil.NRGBAImage, bitmap GlyphBitmap, startX, startY, scale int, fg color.NRGBA) {
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if !bitmap.getBit(x, y) {
				continue
			}
			img.Fill(image.Rect(
				startX+x*scale, startY+y*scale,
				startX+(x+1)*scale, startY+(y+1)*scale,
			), fg)
		}
	}
}

// SavePreview renders a labeled grid and writes it as PNG to path.
func SavePreview(path string, g Grid, groups []Group, glyphs *Glyphs, scale int) error {
	img := RenderPreview(g, groups, glyphs, DefaultPreviewColors(), scale)
	return imageutil.SavePNG(img, path)
}
