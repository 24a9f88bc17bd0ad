package imagepkg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Quadrant identifies one of the four collage slots.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("quadrant(%d)", int(q))
}

// Tile is the source photograph and price shown in one quadrant.
type Tile struct {
	Source string
	Price  string
}

// CollageOptions describes the whole canvas.
type CollageOptions struct {
	CanvasSize int
	Padding    int
	Background color.Color
	// Tiles are laid out top-left, top-right, bottom-left, bottom-right.
	Tiles         []Tile
	WatermarkPath string
	Thumbnail     ThumbnailOptions
	// OnTile, if set, is called after each tile has been pasted.
	OnTile func(q Quadrant, t Tile)
}

// DarkBlue is the stock canvas background.
var DarkBlue = color.NRGBA{R: 0x00, G: 0x00, B: 0x8b, A: 0xff}

// ThumbnailSize is the side of each tile: half the canvas minus two paddings.
func ThumbnailSize(canvasSize, padding int) int {
	return canvasSize/2 - padding*2
}

// QuadrantOffsets returns where each tile's top-left corner goes, indexed by Quadrant.
func QuadrantOffsets(canvasSize, padding int) [4]image.Point {
	near := padding
	far := ThumbnailSize(canvasSize, padding) + padding*3
	return [4]image.Point{
		TopLeft:     image.Pt(near, near),
		TopRight:    image.Pt(far, near),
		BottomLeft:  image.Pt(near, far),
		BottomRight: image.Pt(far, far),
	}
}

// WatermarkOffset right-aligns the watermark with the right column of tiles,
// just under the top edge.
func WatermarkOffset(thumbSize, padding, watermarkWidth int) image.Point {
	return image.Pt(thumbSize*2-watermarkWidth+padding*3, padding-5)
}

// ComposeCollage renders the four tiles and the watermark onto a new canvas.
func ComposeCollage(opts CollageOptions) (*image.NRGBA, error) {
	if len(opts.Tiles) != 4 {
		return nil, fmt.Errorf("collage needs 4 tiles, got %d", len(opts.Tiles))
	}
	thumbSize := ThumbnailSize(opts.CanvasSize, opts.Padding)
	if opts.CanvasSize <= 0 || thumbSize <= 0 {
		return nil, fmt.Errorf("%w: canvas %d with padding %d", ErrInvalidGeometry, opts.CanvasSize, opts.Padding)
	}
	bg := opts.Background
	if bg == nil {
		bg = DarkBlue
	}

	canvas := imaging.New(opts.CanvasSize, opts.CanvasSize, bg)
	offsets := QuadrantOffsets(opts.CanvasSize, opts.Padding)

	for i, t := range opts.Tiles {
		q := Quadrant(i)
		thumb, err := GenerateThumbnail(t.Source, thumbSize, t.Price, opts.Thumbnail)
		if err != nil {
			return nil, fmt.Errorf("%s tile: %w", q, err)
		}
		canvas = imaging.Overlay(canvas, thumb, offsets[q], 1.0)
		if opts.OnTile != nil {
			opts.OnTile(q, t)
		}
	}

	watermark, err := LoadImage(opts.WatermarkPath)
	if err != nil {
		return nil, fmt.Errorf("watermark: %w", err)
	}
	pos := WatermarkOffset(thumbSize, opts.Padding, watermark.Bounds().Dx())
	canvas = imaging.Overlay(canvas, watermark, pos, 1.0)

	return canvas, nil
}
