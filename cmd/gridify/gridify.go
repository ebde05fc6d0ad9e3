// Command gridify converts a screenshot of a 6x6 sliding-block puzzle into
// a board description.
//
// Usage:
//
//	gridify [-input image.png] [-config gridify.json] [-seed N]
//	        [-decoder std|gocv] [-preview out.png] [-scale N] [-check]
//	        [-calibrate N [-method dominantcolor|kmeans]] [-v]
//
// Without flags it reads image.png from the working directory and prints the
// labeled grid followed by the flattened 36 character board. The config
// file path can also be set with GRIDIFY_CONFIG; a .env file in the working
// directory is loaded first.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	puzzlesim "github.com/fspv/hamster-kombat-puzzle-sim"
	"github.com/fspv/hamster-kombat-puzzle-sim/imageutil"
)

// options are the parsed command line flags.
type options struct {
	configPath string
	input      string
	decoder    string
	seed       uint64
	preview    string
	scale      int
	check      bool
	calibrate  int
	method     string
	verbose    bool

	// set records which flags were given explicitly.
	set map[string]bool
}

func main() {
	_ = godotenv.Load()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := newLogger(opts.verbose)
	if err := run(log, opts, os.Stdout); err != nil {
		log.err(err.Error())
		os.Exit(1)
	}
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("gridify", flag.ContinueOnError)
	fs.SetOutput(errOut)

	configPath := os.Getenv("GRIDIFY_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	var opts options
	fs.StringVar(&opts.configPath, "config", configPath,
		"Path to the JSON config file (optional)")
	fs.StringVar(&opts.input, "input", defaultImage,
		"Path to the board image")
	fs.StringVar(&opts.decoder, "decoder", imageutil.DefaultDecoder,
		"Image decoder (available: "+fmt.Sprint(imageutil.DecoderNames())+")")
	fs.Uint64Var(&opts.seed, "seed", 0,
		"Seed for letter assignment, 0 for a random seed")
	fs.StringVar(&opts.preview, "preview", "",
		"Path to save a PNG preview of the labeled board")
	fs.IntVar(&opts.scale, "scale", defaultPreviewScale,
		"Preview scale factor (cell size is 8 * scale pixels)")
	fs.BoolVar(&opts.check, "check", false,
		"Decode the result as a board and report its pieces and moves")
	fs.IntVar(&opts.calibrate, "calibrate", 0,
		"Print the N most prominent image colors and their symbols, then exit")
	fs.StringVar(&opts.method, "method", puzzlesim.PaletteMethodDominantColor.String(),
		"Calibration method: dominantcolor or kmeans")
	fs.BoolVar(&opts.verbose, "v", false,
		"Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// merge applies explicitly given flags on top of the file configuration.
func (o options) merge(cfg appConfig) appConfig {
	if o.set["input"] {
		cfg.Image = o.input
	}
	if o.set["decoder"] {
		cfg.Decoder = o.decoder
	}
	if o.set["seed"] {
		cfg.Seed = o.seed
	}
	if o.set["preview"] {
		cfg.Preview = o.preview
	}
	if o.set["scale"] {
		cfg.PreviewScale = o.scale
	}
	return cfg
}

func run(log *logger, opts options, out io.Writer) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	cfg = opts.merge(cfg)

	palette, err := cfg.palette()
	if err != nil {
		return err
	}
	decoder, err := imageutil.LookupDecoder(cfg.Decoder)
	if err != nil {
		return err
	}

	if opts.calibrate > 0 {
		return runCalibrate(log, decoder, cfg.Image, opts.calibrate, opts.method, palette, out)
	}

	convOpts := []puzzlesim.ConverterOption{
		puzzlesim.WithPalette(palette),
		puzzlesim.WithDecoder(decoder),
		puzzlesim.WithLogger(log.z),
	}
	if cfg.Seed != 0 {
		convOpts = append(convOpts, puzzlesim.WithSeed(cfg.Seed))
	}
	conv := puzzlesim.NewConverter(convOpts...)

	res, err := conv.Convert(cfg.Image)
	if err != nil {
		return err
	}

	if cfg.Preview != "" {
		glyphs, err := puzzlesim.LoadGlyphs()
		if err != nil {
			return fmt.Errorf("load glyphs: %w", err)
		}
		if err := puzzlesim.SavePreview(cfg.Preview, res.Labeled, res.Groups, glyphs, cfg.PreviewScale); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		log.z.Info().
			Str("path", cfg.Preview).
			Str("font", glyphs.Name()).
			Msg("preview written")
	}

	if opts.check {
		checkBoard(log, res.Labeled)
	}

	printResult(out, res.Labeled)
	return nil
}

func printResult(w io.Writer, g puzzlesim.Grid) {
	_, _ = fmt.Fprintln(w, "New array with random letters assigned to groups:")
	_, _ = fmt.Fprintln(w, g.String())
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Result: %s\n", g.Flatten())
}

// checkBoard reports whether the labeled grid decodes as a playable board.
// Problems are logged as warnings; the conversion result is still printed.
func checkBoard(log *logger, g puzzlesim.Grid) {
	board, err := puzzlesim.ParseBoard(g.Flatten())
	if err != nil {
		log.warnf("board does not decode: %v", err)
		return
	}
	log.z.Info().
		Int("pieces", len(board.Pieces)).
		Int("moves", len(board.Moves())).
		Int("primary_row", board.PrimaryRow).
		Bool("solved", board.Solved()).
		Msg("board decoded")
}

func runCalibrate(
	log *logger,
	decoder imageutil.Decoder,
	path string,
	k int,
	methodName string,
	palette puzzlesim.Palette,
	out io.Writer,
) error {
	method, ok := puzzlesim.ParsePaletteMethod(methodName)
	if !ok {
		return fmt.Errorf("invalid calibration method %q, options are dominantcolor or kmeans", methodName)
	}

	img, err := decoder(path)
	if err != nil {
		return err
	}

	swatches := puzzlesim.Calibrate(img, k, method, palette)
	if len(swatches) == 0 {
		log.warn("no colors found")
		return nil
	}
	for _, s := range swatches {
		_, _ = fmt.Fprintf(out, "%s %5.1f%% %c\n", s.Color.Hex(), s.Weight*100, s.Symbol)
	}
	return nil
}
