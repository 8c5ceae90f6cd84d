// Package config loads paint settings from a YAML file.
//
// Example file:
//
//	canvas:
//	  width: 1024
//	  height: 768
//	brush:
//	  size: 8
//	  opacity: 200
//	  color: "#336699"
//	  dab_spacing: 0.25
//	redraw:
//	  interval: 33ms
//	resize:
//	  mode: scale
//	palette: [black, red, blue, "#ff8800"]
//
// Omitted keys keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/gogpu/paint"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the on-disk settings document.
type Config struct {
	Canvas  Canvas   `yaml:"canvas"`
	Brush   Brush    `yaml:"brush"`
	Redraw  Redraw   `yaml:"redraw"`
	Resize  Resize   `yaml:"resize"`
	Palette []string `yaml:"palette"`
}

// Canvas holds the initial document size.
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Brush holds the initial brush.
type Brush struct {
	Size       int     `yaml:"size"`
	Opacity    int     `yaml:"opacity"`
	Color      string  `yaml:"color"`
	DabSpacing float64 `yaml:"dab_spacing"`
}

// Redraw holds display throttling settings.
type Redraw struct {
	Interval time.Duration `yaml:"interval"`
}

// Resize holds the canvas resize policy, "crop" or "scale".
type Resize struct {
	Mode string `yaml:"mode"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Canvas: Canvas{Width: paint.DefaultCanvasWidth, Height: paint.DefaultCanvasHeight},
		Brush: Brush{
			Size:       paint.DefaultBrushSize,
			Opacity:    paint.DefaultOpacity,
			Color:      "black",
			DabSpacing: paint.DefaultDabSpacing,
		},
		Redraw:  Redraw{Interval: paint.DefaultRedrawInterval},
		Resize:  Resize{Mode: paint.ResizeCrop.String()},
		Palette: append([]string(nil), paint.PaletteNames...),
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults. Unknown keys are errors.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	paint.Logger().Debug("config loaded", "path", path)
	return cfg, nil
}

// Parse decodes YAML data into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			for _, msg := range typeErr.Errors {
				paint.Logger().Warn("config field rejected", "detail", msg)
			}
		}
		return err
	}
	return cfg.Validate()
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 ||
		c.Canvas.Width > paint.MaxDimension || c.Canvas.Height > paint.MaxDimension ||
		c.Canvas.Width*c.Canvas.Height > paint.MaxPixels {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Brush.Size <= 0 || c.Brush.Size > paint.MaxBrushSize {
		return fmt.Errorf("%w: brush size %d", ErrInvalid, c.Brush.Size)
	}
	if c.Brush.Opacity < 0 || c.Brush.Opacity > 255 {
		return fmt.Errorf("%w: opacity %d", ErrInvalid, c.Brush.Opacity)
	}
	if c.Brush.DabSpacing <= 0 {
		return fmt.Errorf("%w: dab spacing %v", ErrInvalid, c.Brush.DabSpacing)
	}
	if c.Redraw.Interval < 0 {
		return fmt.Errorf("%w: redraw interval %v", ErrInvalid, c.Redraw.Interval)
	}
	if _, err := paint.ParseColor(c.Brush.Color); err != nil {
		return fmt.Errorf("%w: brush color: %w", ErrInvalid, err)
	}
	if _, err := paint.ParseResizeMode(c.Resize.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// Colors returns the parsed palette.
func (c *Config) Colors() ([]paint.Color, error) {
	out := make([]paint.Color, 0, len(c.Palette))
	for _, s := range c.Palette {
		col, err := paint.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("%w: palette: %w", ErrInvalid, err)
		}
		out = append(out, col)
	}
	return out, nil
}

// Options converts the settings to session options.
func (c *Config) Options() ([]paint.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	color, _ := paint.ParseColor(c.Brush.Color)
	mode, _ := paint.ParseResizeMode(c.Resize.Mode)
	return []paint.Option{
		paint.WithCanvasSize(c.Canvas.Width, c.Canvas.Height),
		paint.WithBrushSize(c.Brush.Size),
		paint.WithOpacity(c.Brush.Opacity),
		paint.WithColor(color),
		paint.WithRedrawInterval(c.Redraw.Interval),
		paint.WithResizeMode(mode),
		paint.WithDabSpacing(c.Brush.DabSpacing),
	}, nil
}
