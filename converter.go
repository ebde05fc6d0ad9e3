package puzzlesim

import (
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/fspv/hamster-kombat-puzzle-sim/imageutil"
)

// Result holds every stage of one conversion.
type Result struct {
	// Classified is the grid straight out of the classifier.
	Classified Grid
	Groups     []Group
	Assignment *Assignment
	// Labeled is Classified with group cells replaced by their letters.
	Labeled Grid
}

// Converter turns board images into labeled grids. A Converter is not safe
// for concurrent use because its letter assigner owns a random source.
type Converter struct {
	Palette Palette

	decoder  imageutil.Decoder
	assigner *LetterAssigner
	log      zerolog.Logger
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a Converter with the given options.
// Defaults: DefaultPalette(), the pure Go decoder, a randomly seeded letter
// assigner and a no-op logger.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		Palette: DefaultPalette(),
		decoder: imageutil.LoadImage,
		log:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.assigner == nil {
		c.assigner = NewLetterAssigner(nil)
	}
	return c
}

// WithPalette sets the reference colors used by the classifier.
func WithPalette(p Palette) ConverterOption {
	return func(c *Converter) {
		c.Palette = p
	}
}

// WithRand sets the random source letters are drawn with.
func WithRand(rng *rand.Rand) ConverterOption {
	return func(c *Converter) {
		c.assigner = NewLetterAssigner(rng)
	}
}

// WithSeed makes letter assignment reproducible.
func WithSeed(seed uint64) ConverterOption {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithDecoder sets the function used to read image files.
func WithDecoder(d imageutil.Decoder) ConverterOption {
	return func(c *Converter) {
		if d != nil {
			c.decoder = d
		}
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(l zerolog.Logger) ConverterOption {
	return func(c *Converter) {
		c.log = l
	}
}

// Convert reads the board image at path and converts it.
func (c *Converter) Convert(path string) (*Result, error) {
	img, err := c.decoder(path)
	if err != nil {
		return nil, err
	}
	c.log.Debug().
		Str("path", path).
		Int("width", img.Width()).
		Int("height", img.Height()).
		Msg("image loaded")
	return c.ConvertImage(img)
}

// ConvertImage samples, groups and labels a board image.
func (c *Converter) ConvertImage(img image.Image) (*Result, error) {
	classified := SampleGrid(img, c.Palette)
	c.log.Debug().Str("grid", classified.Flatten()).Msg("cells classified")

	groups := FindGroups(classified)
	c.log.Debug().Int("groups", len(groups)).Msg("groups detected")

	assignment, err := c.assigner.Assign(groups)
	if err != nil {
		return nil, fmt.Errorf("assign letters: %w", err)
	}

	return &Result{
		Classified: classified,
		Groups:     groups,
		Assignment: assignment,
		Labeled:    ApplyLabels(classified, assignment),
	}, nil
}
