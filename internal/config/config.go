// Collage configuration. Every key has a default reproducing the stock layout,
// so running without a config file renders the standard collage.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Root         string  `mapstructure:"root"`
	CanvasSize   int     `mapstructure:"canvas_size"`
	Padding      int     `mapstructure:"padding"`
	CornerRadius float64 `mapstructure:"corner_radius"`
	FontSize     float64 `mapstructure:"font_size"`
	BadgeOffset  int     `mapstructure:"badge_offset"`
	TextX        int     `mapstructure:"text_x"`
	TextYOffset  int     `mapstructure:"text_y_offset"`
	Background   string  `mapstructure:"background"`
	TextColor    string  `mapstructure:"text_color"`
	Watermark    string  `mapstructure:"watermark"`
	Badge        string  `mapstructure:"badge"`
	Font         string  `mapstructure:"font"`
	Output       string  `mapstructure:"output"`
	LogLevel     string  `mapstructure:"log_level"`
	Tiles        []Tile  `mapstructure:"tiles"`
}

// Tile is one quadrant, listed top-left, top-right, bottom-left, bottom-right.
type Tile struct {
	Source string `mapstructure:"source"`
	Price  string `mapstructure:"price"`
}

func Default() *Config {
	return &Config{
		Root:         ".",
		CanvasSize:   1080,
		Padding:      10,
		CornerRadius: 15,
		FontSize:     85,
		BadgeOffset:  120,
		TextX:        15,
		TextYOffset:  105,
		Background:   "#00008b",
		TextColor:    "#ffffff",
		Watermark:    "input/nasa.png",
		Badge:        "input/pricebg.png",
		Font:         "input/BebasNeue-Regular.ttf",
		Output:       "output/final.png",
		LogLevel:     "info",
		Tiles: []Tile{
			{Source: "input/ss.jpg", Price: "100"},
			{Source: "input/f9h.jpg", Price: "5"},
			{Source: "input/moon.jpg", Price: "25"},
			{Source: "input/iss.jpg", Price: "40"},
		},
	}
}

// LoadConfig reads config.yaml from dir. A missing file is not an error; the
// returned viper instance is then empty and ParseConfig yields the defaults.
func LoadConfig(dir string) (*viper.Viper, error) {
	viperInstance := viper.New()

	viperInstance.AddConfigPath(dir)
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return viperInstance, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return viperInstance, nil
}

// ParseConfig overlays the values found in v on top of Default and validates the result.
func ParseConfig(v *viper.Viper) (*Config, error) {
	c := Default()
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch {
	case c.CanvasSize <= 0:
		return fmt.Errorf("%w: canvas_size must be positive, got %d", ErrInvalidConfig, c.CanvasSize)
	case c.Padding < 0:
		return fmt.Errorf("%w: padding must not be negative, got %d", ErrInvalidConfig, c.Padding)
	case c.CanvasSize/2-c.Padding*2 <= 0:
		return fmt.Errorf("%w: padding %d leaves no room for tiles on a %d canvas", ErrInvalidConfig, c.Padding, c.CanvasSize)
	case c.CornerRadius <= 0:
		return fmt.Errorf("%w: corner_radius must be positive", ErrInvalidConfig)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font_size must be positive", ErrInvalidConfig)
	case len(c.Tiles) != 4:
		return fmt.Errorf("%w: need exactly 4 tiles, got %d", ErrInvalidConfig, len(c.Tiles))
	case c.Output == "":
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	for i, t := range c.Tiles {
		if t.Source == "" {
			return fmt.Errorf("%w: tile %d has no source", ErrInvalidConfig, i)
		}
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseHexColor(c.TextColor); err != nil {
		return fmt.Errorf("%w: text_color: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Path resolves a configured path against Root. Absolute paths are kept.
func (c *Config) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// BackgroundColor and TextColorValue assume Validate has passed.
func (c *Config) BackgroundColor() color.NRGBA {
	col, _ := ParseHexColor(c.Background)
	return col
}

func (c *Config) TextColorValue() color.NRGBA {
	col, _ := ParseHexColor(c.TextColor)
	return col
}

// ParseHexColor accepts #rgb, #rrggbb and #rrggbbaa (the # is optional).
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
