// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/webpread/pkg/colorspace"
	"github.com/user/webpread/pkg/extract"
	"github.com/user/webpread/pkg/sheet"
)

// Config represents the full configuration for webpread.
type Config struct {
	// Output
	OutputDir string `yaml:"output"`

	// Frame selection
	Frames FramesConfig `yaml:"frames"`

	// Color correction
	Color ColorConfig `yaml:"color"`

	// Contact sheet
	Sheet SheetConfig `yaml:"sheet"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// FramesConfig selects the frames to process.
type FramesConfig struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"` // -1 = last frame
	Step  int `yaml:"step"`
}

// ColorConfig controls the alpha-association pass.
type ColorConfig struct {
	Premultiply bool    `yaml:"premultiply"`
	Gamma       float64 `yaml:"gamma"`
}

// SheetConfig controls contact sheet layout.
type SheetConfig struct {
	Columns         int    `yaml:"columns"`
	CellWidth       int    `yaml:"cell_width"`
	Gap             int    `yaml:"gap"`
	Padding         int    `yaml:"padding"`
	BorderWidth     int    `yaml:"border_width"`
	BackgroundColor string `yaml:"background_color"`
	TextColor       string `yaml:"text_color"`
	BorderColor     string `yaml:"border_color"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		OutputDir: "./frames",
		Frames: FramesConfig{
			Start: 0,
			End:   -1,
			Step:  1,
		},
		Color: ColorConfig{
			Premultiply: true,
			Gamma:       colorspace.DefaultGamma,
		},
		Sheet: SheetConfig{
			Columns:         4,
			CellWidth:       160,
			Gap:             12,
			Padding:         16,
			BorderWidth:     1,
			BackgroundColor: "#dcdcdc",
			TextColor:       "#323232",
			BorderColor:     "#b4b4b4",
		},
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ToExtractConfig converts the frame selection to an extract.Config.
func (c Config) ToExtractConfig() extract.Config {
	return extract.Config{
		Start: c.Frames.Start,
		End:   c.Frames.End,
		Step:  c.Frames.Step,
	}
}

// ToSheetConfig converts the sheet settings to a sheet.Config.
func (c Config) ToSheetConfig() sheet.Config {
	return sheet.Config{
		Columns:     c.Sheet.Columns,
		CellWidth:   c.Sheet.CellWidth,
		Gap:         c.Sheet.Gap,
		Padding:     c.Sheet.Padding,
		BorderWidth: c.Sheet.BorderWidth,
		Theme: sheet.Theme{
			Background: ParseColor(c.Sheet.BackgroundColor),
			Text:       ParseColor(c.Sheet.TextColor),
			Border:     ParseColor(c.Sheet.BorderColor),
		},
	}
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var r, g, b uint8
	for i, c := range []byte{hex[0], hex[1]} {
		v := hexValue(c)
		if i == 0 {
			r = v << 4
		} else {
			r |= v
		}
	}
	for i, c := range []byte{hex[2], hex[3]} {
		v := hexValue(c)
		if i == 0 {
			g = v << 4
		} else {
			g |= v
		}
	}
	for i, c := range []byte{hex[4], hex[5]} {
		v := hexValue(c)
		if i == 0 {
			b = v << 4
		} else {
			b |= v
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
