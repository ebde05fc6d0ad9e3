package puzzlesim

import (
	"image"
	"image/color"
	"testing"

	"github.com/fspv/hamster-kombat-puzzle-sim/imageutil"
)

// twoToneImage is three quarters green and one quarter red.
func twoToneImage() *imageutil.NRGBAImage {
	img := imageutil.CreateSolidImage(80, 80, color.NRGBA{G: 255, A: 255})
	img.Fill(image.Rect(0, 60, 80, 80), color.NRGBA{R: 255, A: 255})
	return img
}

func TestCalibrate(t *testing.T) {
	for _, method := range []PaletteMethod{PaletteMethodDominantColor, PaletteMethodKMeans} {
		t.Run(method.String(), func(t *testing.T) {
			swatches := Calibrate(twoToneImage(), 2, method, DefaultPalette())
			if len(swatches) == 0 {
				t.Fatal("Expected swatches")
			}
			if swatches[0].Symbol != SymbolGreen {
				t.Errorf("Most common color %s classified %q, want %q",
					swatches[0].Color.Hex(), swatches[0].Symbol, SymbolGreen)
			}

			total := 0.0
			for i, s := range swatches {
				total += s.Weight
				if i > 0 && s.Weight > swatches[i-1].Weight {
					t.Errorf("Swatches not sorted by weight: %+v", swatches)
				}
			}
			if total < 0.999 || total > 1.001 {
				t.Errorf("Weights sum to %v, want 1", total)
			}
		})
	}
}

func TestExtractPalette(t *testing.T) {
	if got := ExtractPalette(twoToneImage(), 0, PaletteMethodKMeans); got != nil {
		t.Errorf("k=0 should return nil, got %v", got)
	}
	solid := imageutil.CreateSolidImage(10, 10, color.NRGBA{R: 40, G: 36, B: 36, A: 255})
	if got := ExtractPalette(solid, 3, PaletteMethodKMeans); len(got) > 3 {
		t.Errorf("Expected at most 3 colors, got %d", len(got))
	}
	if got := ExtractPalette(twoToneImage(), 2, PaletteMethodDominantColor); len(got) == 0 {
		t.Error("Expected colors from dominantcolor")
	}
}

func TestParsePaletteMethod(t *testing.T) {
	tests := []struct {
		in   string
		want PaletteMethod
		ok   bool
	}{
		{"kmeans", PaletteMethodKMeans, true},
		{"dominantcolor", PaletteMethodDominantColor, true},
		{"", PaletteMethodDominantColor, true},
		{"median-cut", PaletteMethodDominantColor, false},
	}
	for _, tt := range tests {
		got, ok := ParsePaletteMethod(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePaletteMethod(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
