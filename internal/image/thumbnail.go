package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"unicode/utf8"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	currencySymbol = "$"
	priceMinWidth  = 4
)

// ThumbnailOptions holds the fixed decorations drawn on every thumbnail.
type ThumbnailOptions struct {
	BadgePath    string
	FontPath     string
	FontSize     float64
	CornerRadius float64
	// BadgeOffset is the distance from the bottom edge to the badge's top.
	BadgeOffset int
	// TextX and TextYOffset place the top-left of the price text; the offset
	// is measured from the bottom edge.
	TextX       int
	TextYOffset int
	TextColor   color.Color
}

// DefaultThumbnailOptions returns the decorations of the stock collage.
func DefaultThumbnailOptions() ThumbnailOptions {
	return ThumbnailOptions{
		BadgePath:    "input/pricebg.png",
		FontPath:     "input/BebasNeue-Regular.ttf",
		FontSize:     85,
		CornerRadius: 15,
		BadgeOffset:  120,
		TextX:        15,
		TextYOffset:  105,
		TextColor:    color.White,
	}
}

// FormatPrice prefixes the currency symbol and left-pads with spaces to a
// width of four characters. Longer strings are returned as is.
func FormatPrice(price string) string {
	s := currencySymbol + price
	for n := utf8.RuneCountInString(s); n < priceMinWidth; n++ {
		s = " " + s
	}
	return s
}

// GenerateThumbnail builds one collage tile: the source center-cropped to a
// size x size square with rounded corners, the price badge near the bottom and
// the formatted price on top of it.
func GenerateThumbnail(path string, size int, price string, opts ThumbnailOptions) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: thumbnail size %d", ErrInvalidGeometry, size)
	}
	src, err := LoadImage(path)
	if err != nil {
		return nil, err
	}

	thumb := imaging.Fill(src, size, size, imaging.Center, imaging.Lanczos)
	if err := ApplyRoundedCorners(thumb, opts.CornerRadius); err != nil {
		return nil, fmt.Errorf("round corners of %s: %w", path, err)
	}

	face, err := LoadFontFace(opts.FontPath, opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	badge, err := LoadImage(opts.BadgePath)
	if err != nil {
		return nil, err
	}
	thumb = imaging.Overlay(thumb, badge, image.Pt(0, size-opts.BadgeOffset), 1.0)

	textColor := opts.TextColor
	if textColor == nil {
		textColor = color.White
	}
	drawText(thumb, face, FormatPrice(price), image.Pt(opts.TextX, size-opts.TextYOffset), textColor)

	return thumb, nil
}

// drawText renders s with its top-left corner at origin.
func drawText(dst draw.Image, face font.Face, s string, origin image.Point, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(origin.X, origin.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
