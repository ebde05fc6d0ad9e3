package puzzlesim

import (
	"fmt"
	"image"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// GlyphWidth and GlyphHeight define the character cell size of a glyph
	// bitmap.
	GlyphWidth  = 8
	GlyphHeight = 8
)

// boardAlphabet is every symbol a labeled grid or board description can
// contain.
const boardAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZox."

// GlyphBitmap represents an 8x8 character as a 64-bit integer.
// Each bit represents a pixel: 1 = foreground, 0 = background.
type GlyphBitmap uint64

// Glyphs holds pre-rendered bitmaps for the board alphabet.
type Glyphs struct {
	bitmaps map[byte]GlyphBitmap
	name    string
}

func (g GlyphBitmap) getBit(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return g&(1<<(y*GlyphWidth+x)) != 0
}

func (g *GlyphBitmap) setBit(x, y int, value bool) {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return
	}
	pos := y*GlyphWidth + x
	if value {
		*g |= 1 << pos
	} else {
		*g &= ^(1 << pos)
	}
}

// LoadGlyphs renders the board alphabet from the embedded Go Regular font.
func LoadGlyphs() (*Glyphs, error) {
	return LoadGlyphsTTF(goregular.TTF, "Go Regular")
}

// LoadGlyphsTTF renders the board alphabet from TrueType font data.
func LoadGlyphsTTF(ttf []byte, name string) (*Glyphs, error) {
	ttfFont, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}

	g := &Glyphs{
		bitmaps: make(map[byte]GlyphBitmap, len(boardAlphabet)),
		name:    name,
	}
	for i := 0; i < len(boardAlphabet); i++ {
		g.bitmaps[boardAlphabet[i]] = renderGlyphToBitmap(ttfFont, rune(boardAlphabet[i]))
	}
	return g, nil
}

// Name returns the name of the font the glyphs were rendered from.
func (g *Glyphs) Name() string {
	return g.name
}

// Glyph returns the bitmap for a board symbol.
func (g *Glyphs) Glyph(symbol byte) (GlyphBitmap, bool) {
	bitmap, ok := g.bitmaps[symbol]
	return bitmap, ok
}

// renderGlyphToBitmap renders a single glyph to an 8x8 bitmap. Pixels with
// more than 25% coverage are set; a higher cutoff loses the thin strokes of
// anti-aliased output at this size.
func renderGlyphToBitmap(ttfFont *truetype.Font, r rune) GlyphBitmap {
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(GlyphHeight),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttfFont)
	ctx.SetFontSize(float64(GlyphHeight))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	// Baseline from the font metrics (26.6 fixed point) so that capitals
	// sit vertically centered in the cell.
	metrics := face.Metrics()
	ascent := metrics.Ascent >> 6
	descent := metrics.Descent >> 6
	baselineY := (GlyphHeight + int(ascent) - int(descent)) / 2

	advance, _ := face.GlyphAdvance(r)
	x := (GlyphWidth - int(advance>>6)) / 2
	if x < 0 {
		x = 0
	}

	if _, err := ctx.DrawString(string(r), freetype.Pt(x, baselineY)); err != nil {
		return 0
	}

	var bitmap GlyphBitmap
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if img.AlphaAt(x, y).A > 64 {
				bitmap.setBit(x, y, true)
			}
		}
	}
	return bitmap
}
