// Package imagetest writes the input assets of a collage run into a directory
// so tests can exercise the whole pipeline without checked-in binaries.
package imagetest

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font/gofont/goregular"
)

// Default asset paths, relative to the collage root.
const (
	TopLeftPhoto     = "input/ss.jpg"
	TopRightPhoto    = "input/f9h.jpg"
	BottomLeftPhoto  = "input/moon.jpg"
	BottomRightPhoto = "input/iss.jpg"
	Watermark        = "input/nasa.png"
	Badge            = "input/pricebg.png"
	Font             = "input/BebasNeue-Regular.ttf"
)

// BadgeWidth is narrower than a stock tile so the bottom-right corner of a
// tile stays uncovered.
const (
	BadgeWidth    = 300
	BadgeHeight   = 120
	WatermarkSize = 128
)

type photo struct {
	path string
	w, h int
	c    color.NRGBA
}

// photos uses mixed aspect ratios and one source smaller than a tile.
var photos = []photo{
	{TopLeftPhoto, 800, 600, color.NRGBA{R: 200, G: 40, B: 40, A: 255}},
	{TopRightPhoto, 600, 900, color.NRGBA{R: 40, G: 200, B: 40, A: 255}},
	{BottomLeftPhoto, 520, 520, color.NRGBA{R: 40, G: 40, B: 200, A: 255}},
	{BottomRightPhoto, 300, 200, color.NRGBA{R: 200, G: 200, B: 40, A: 255}},
}

// Assets returns every fixture path, relative to the root.
func Assets() []string {
	return []string{TopLeftPhoto, TopRightPhoto, BottomLeftPhoto, BottomRightPhoto, Watermark, Badge, Font}
}

// WriteAssets creates the full input set under root.
func WriteAssets(tb testing.TB, root string) {
	tb.Helper()
	if err := os.MkdirAll(filepath.Join(root, "input"), 0o755); err != nil {
		tb.Fatal(err)
	}
	for _, p := range photos {
		img := imaging.New(p.w, p.h, p.c)
		if err := imaging.Save(img, filepath.Join(root, p.path)); err != nil {
			tb.Fatal(err)
		}
	}

	badge := imaging.New(BadgeWidth, BadgeHeight, color.NRGBA{A: 255})
	if err := imaging.Save(badge, filepath.Join(root, Badge)); err != nil {
		tb.Fatal(err)
	}

	if err := qrcode.WriteFile("https://example.com/promo", qrcode.Medium, WatermarkSize, filepath.Join(root, Watermark)); err != nil {
		tb.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(root, Font), goregular.TTF, 0o644); err != nil {
		tb.Fatal(err)
	}
}
