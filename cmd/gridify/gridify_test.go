package main

import (
	"bytes"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	puzzlesim "github.com/fspv/hamster-kombat-puzzle-sim"
	"github.com/fspv/hamster-kombat-puzzle-sim/imageutil"
)

func quietLogger() *logger {
	return newLoggerTo(io.Discard, true, false)
}

// writeBoard saves a board image with a green pair in the top-left corner,
// a red triple in column 2 and one yellow cell.
func writeBoard(t *testing.T, dir string) string {
	t.Helper()
	green := color.NRGBA{G: 255, A: 255}
	red := color.NRGBA{R: 255, A: 255}
	yellow := color.NRGBA{R: 255, G: 255, A: 255}
	empty := color.NRGBA{R: 40, G: 36, B: 36, A: 255}

	colors := make([][]color.NRGBA, puzzlesim.GridSize)
	for i := range colors {
		colors[i] = make([]color.NRGBA, puzzlesim.GridSize)
		for j := range colors[i] {
			colors[i][j] = empty
		}
	}
	colors[0][0], colors[0][1] = green, green
	colors[1][2], colors[2][2], colors[3][2] = red, red, red
	colors[5][5] = yellow

	path := filepath.Join(dir, "image.png")
	if err := imageutil.SavePNG(imageutil.CreateGridImage(colors, 16, 16), path); err != nil {
		t.Fatal(err)
	}
	return path
}

func mustParseFlags(t *testing.T, args ...string) options {
	t.Helper()
	opts, err := parseFlags(args, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags(%v) failed: %v", args, err)
	}
	return opts
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := writeBoard(t, dir)
	preview := filepath.Join(dir, "preview.png")

	opts := mustParseFlags(t,
		"-config", filepath.Join(dir, "missing.json"),
		"-input", input,
		"-seed", "5",
		"-preview", preview,
		"-check",
	)

	var out bytes.Buffer
	if err := run(quietLogger(), opts, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Expected 9 output lines, got %d:\n%s", len(lines), out.String())
	}
	if lines[0] != "New array with random letters assigned to groups:" {
		t.Errorf("Unexpected header %q", lines[0])
	}
	for _, row := range lines[1:7] {
		if len(strings.Fields(row)) != puzzlesim.GridSize {
			t.Errorf("Row %q does not have %d symbols", row, puzzlesim.GridSize)
		}
	}
	if lines[7] != "" {
		t.Errorf("Expected blank separator, got %q", lines[7])
	}

	flat, ok := strings.CutPrefix(lines[8], "Result: ")
	if !ok || len(flat) != 36 {
		t.Fatalf("Unexpected result line %q", lines[8])
	}
	if flat[0] != flat[1] || flat[0] == 'V' {
		t.Errorf("Green pair not labeled: %s", flat)
	}
	if flat[8] != flat[14] || flat[14] != flat[20] || flat[8] == 'R' {
		t.Errorf("Red triple not labeled: %s", flat)
	}
	if flat[35] != 'A' || flat[2] != 'o' {
		t.Errorf("Ungrouped cells changed: %s", flat)
	}

	if _, err := os.Stat(preview); err != nil {
		t.Errorf("Preview not written: %v", err)
	}

	// same seed, same letters
	var again bytes.Buffer
	opts.preview, opts.check = "", false
	delete(opts.set, "preview")
	if err := run(quietLogger(), opts, &again); err != nil {
		t.Fatal(err)
	}
	if again.String() != out.String() {
		t.Errorf("Seeded runs differ:\n%s\n%s", out.String(), again.String())
	}
}

func TestRunDecodeFailurePrintsNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "image.png")
	if err := os.WriteFile(input, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := mustParseFlags(t, "-config", filepath.Join(dir, "missing.json"), "-input", input)
	var out bytes.Buffer
	if err := run(quietLogger(), opts, &out); err == nil {
		t.Fatal("Expected decode error")
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeBoard(t, dir)
	config := filepath.Join(dir, "gridify.json")
	data := `{"image": "` + filepath.ToSlash(input) + `", "seed": 11}`
	if err := os.WriteFile(config, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(quietLogger(), mustParseFlags(t, "-config", config), &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Result: ") {
		t.Errorf("Missing result line:\n%s", out.String())
	}
}

func TestRunUnknownDecoder(t *testing.T) {
	dir := t.TempDir()
	opts := mustParseFlags(t,
		"-config", filepath.Join(dir, "missing.json"),
		"-input", writeBoard(t, dir),
		"-decoder", "imagemagick",
	)
	if err := run(quietLogger(), opts, io.Discard); err == nil {
		t.Error("Expected error for unknown decoder")
	}
}

func TestRunCalibrate(t *testing.T) {
	dir := t.TempDir()
	opts := mustParseFlags(t,
		"-config", filepath.Join(dir, "missing.json"),
		"-input", writeBoard(t, dir),
		"-calibrate", "3",
	)

	var out bytes.Buffer
	if err := run(quietLogger(), opts, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) == 0 || len(lines) > 3 {
		t.Fatalf("Expected 1-3 swatch lines, got:\n%s", out.String())
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "#") {
			t.Errorf("Swatch line %q does not start with a hex color", line)
		}
	}

	opts.method = "median-cut"
	if err := run(quietLogger(), opts, io.Discard); err == nil {
		t.Error("Expected error for unknown calibration method")
	}
}

func TestParseFlags(t *testing.T) {
	opts := mustParseFlags(t)
	if opts.input != defaultImage {
		t.Errorf("Default input = %q, want %q", opts.input, defaultImage)
	}
	if len(opts.set) != 0 {
		t.Errorf("No flags should be marked as set: %v", opts.set)
	}

	cfg := defaultConfig()
	cfg.Image = "from-config.png"
	if got := opts.merge(cfg); got.Image != "from-config.png" {
		t.Errorf("Unset flag overrode config: %q", got.Image)
	}

	opts = mustParseFlags(t, "-input", "flag.png", "-seed", "9")
	got := opts.merge(cfg)
	if got.Image != "flag.png" || got.Seed != 9 {
		t.Errorf("Flags not applied: %+v", got)
	}

	if _, err := parseFlags([]string{"extra"}, io.Discard); err == nil {
		t.Error("Expected error for positional arguments")
	}
}
