package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 1080, c.CanvasSize)
	assert.Len(t, c.Tiles, 4)
	assert.Equal(t, color.NRGBA{B: 0x8b, A: 0xff}, c.BackgroundColor())
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c.TextColorValue())
}

func TestLoadConfigWithoutFile(t *testing.T) {
	v, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	c, err := ParseConfig(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
root: /srv/promo
padding: 20
background: "#112233"
tiles:
  - source: input/a.jpg
    price: 7
  - source: input/b.jpg
    price: "12"
  - source: input/c.jpg
    price: 300
  - source: input/d.jpg
    price: 4000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	v, err := LoadConfig(dir)
	require.NoError(t, err)
	c, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "/srv/promo", c.Root)
	assert.Equal(t, 20, c.Padding)
	assert.Equal(t, 1080, c.CanvasSize, "unset keys keep their default")
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, c.BackgroundColor())
	require.Len(t, c.Tiles, 4)
	assert.Equal(t, Tile{Source: "input/a.jpg", Price: "7"}, c.Tiles[0])
	assert.Equal(t, Tile{Source: "input/d.jpg", Price: "4000"}, c.Tiles[3])
	assert.Equal(t, filepath.Join("/srv/promo", "input/a.jpg"), c.Path(c.Tiles[0].Source))
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("padding: [1, 2\n"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero canvas", mutate: func(c *Config) { c.CanvasSize = 0 }},
		{name: "negative padding", mutate: func(c *Config) { c.Padding = -1 }},
		{name: "padding eats tiles", mutate: func(c *Config) { c.Padding = 300 }},
		{name: "zero radius", mutate: func(c *Config) { c.CornerRadius = 0 }},
		{name: "zero font size", mutate: func(c *Config) { c.FontSize = 0 }},
		{name: "three tiles", mutate: func(c *Config) { c.Tiles = c.Tiles[:3] }},
		{name: "empty tile source", mutate: func(c *Config) { c.Tiles[1].Source = "" }},
		{name: "no output", mutate: func(c *Config) { c.Output = "" }},
		{name: "bad background", mutate: func(c *Config) { c.Background = "navy" }},
		{name: "bad text color", mutate: func(c *Config) { c.TextColor = "#12345" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#00008b", want: color.NRGBA{B: 0x8b, A: 0xff}},
		{in: "ffffff", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#f0a", want: color.NRGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}},
		{in: "#10203040", want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: "#zzzzzz", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathKeepsAbsolute(t *testing.T) {
	c := Default()
	abs := filepath.Join(t.TempDir(), "x.png")
	assert.Equal(t, abs, c.Path(abs))
	assert.Equal(t, filepath.Join(".", "output/final.png"), c.Path(c.Output))
}
