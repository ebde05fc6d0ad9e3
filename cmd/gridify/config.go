package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	puzzlesim "github.com/fspv/hamster-kombat-puzzle-sim"
	"github.com/fspv/hamster-kombat-puzzle-sim/imageutil"
)

// Default configuration values.
const (
	defaultImage        = "image.png"
	defaultConfigPath   = "gridify.json"
	defaultPreviewScale = 8
)

// paletteConfig holds the classifier reference colors as "#rrggbb".
type paletteConfig struct {
	Yellow    string  `json:"yellow"`
	Red       string  `json:"red"`
	Green     string  `json:"green"`
	Empty     string  `json:"empty"`
	Threshold float64 `json:"threshold"`
}

// appConfig holds the application configuration.
type appConfig struct {
	Image        string        `json:"image"`
	Decoder      string        `json:"decoder"`
	Seed         uint64        `json:"seed,omitempty"`
	Preview      string        `json:"preview,omitempty"`
	PreviewScale int           `json:"preview_scale,omitempty"`
	Palette      paletteConfig `json:"palette"`
}

func defaultConfig() appConfig {
	return appConfig{
		Image:        defaultImage,
		Decoder:      imageutil.DefaultDecoder,
		PreviewScale: defaultPreviewScale,
		Palette: paletteConfig{
			Yellow:    "#ffff00",
			Red:       "#ff0000",
			Green:     "#00ff00",
			Empty:     "#282424",
			Threshold: puzzlesim.DefaultThreshold,
		},
	}
}

// loadConfig loads configuration from the specified path. A missing file
// yields the defaults.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return appConfig{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Image = strings.TrimSpace(cfg.Image)
	if cfg.Image == "" {
		cfg.Image = defaultImage
	}
	if strings.TrimSpace(cfg.Decoder) == "" {
		cfg.Decoder = imageutil.DefaultDecoder
	}
	if cfg.PreviewScale <= 0 {
		cfg.PreviewScale = defaultPreviewScale
	}
	return cfg, nil
}

// palette converts the configured reference colors.
func (c appConfig) palette() (puzzlesim.Palette, error) {
	p := c.Palette
	palette, err := puzzlesim.PaletteFromHex(p.Yellow, p.Red, p.Green, p.Empty, p.Threshold)
	if err != nil {
		return puzzlesim.Palette{}, fmt.Errorf("palette: %w", err)
	}
	return palette, nil
}
