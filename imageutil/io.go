package imageutil

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"os"
	"sort"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// DefaultDecoder is the name of the pure Go decoder, which is always
// registered.
const DefaultDecoder = "std"

// Decoder reads the image at path and returns it as an NRGBAImage.
type Decoder func(path string) (*NRGBAImage, error)

var decoders = map[string]Decoder{
	DefaultDecoder: LoadImage,
}

// RegisterDecoder makes a decoder available under name, replacing any
// decoder previously registered with the same name.
func RegisterDecoder(name string, d Decoder) {
	decoders[name] = d
}

// LookupDecoder returns the decoder registered under name.
func LookupDecoder(name string) (Decoder, error) {
	d, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown decoder %q (available: %v)",
			name, DecoderNames())
	}
	return d, nil
}

// DecoderNames returns the sorted names of all registered decoders.
func DecoderNames() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadImage loads an image from the specified path.
// Supports PNG, JPEG, GIF, BMP, TIFF and WebP formats.
func LoadImage(path string) (*NRGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return NRGBAImageFromImage(img), nil
}

// SavePNG saves an image as PNG to the specified path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return f.Close()
}
