package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/vector"
)

// ErrInvalidGeometry is returned when a corner cutout cannot be built for the
// requested image size and radius.
var ErrInvalidGeometry = errors.New("invalid corner geometry")

// Point is a position in image space. Pixel centers sit on integer coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned bounding box.
type Rect struct {
	Min, Max Point
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the box.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// PixelExtent returns the width and height of the pixel grid cells the box touches.
func (r Rect) PixelExtent() (int, int) {
	w := int(math.Ceil(r.Max.X) - math.Floor(r.Min.X))
	h := int(math.Ceil(r.Max.Y) - math.Floor(r.Min.Y))
	return w, h
}

// Polygon is a closed shape; the last point connects back to the first.
type Polygon []Point

// Bounds returns the bounding box of the polygon's vertices.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	b := Rect{Min: p[0], Max: p[0]}
	for _, pt := range p[1:] {
		b.Min.X = math.Min(b.Min.X, pt.X)
		b.Min.Y = math.Min(b.Min.Y, pt.Y)
		b.Max.X = math.Max(b.Max.X, pt.X)
		b.Max.Y = math.Max(b.Max.Y, pt.Y)
	}
	return b
}

// RotateDegree rotates the polygon around the center of its bounding box.
// Positive angles turn clockwise on screen (y grows downwards).
func (p Polygon) RotateDegree(deg float64) Polygon {
	c := p.Bounds().Center()
	sin, cos := math.Sincos(deg * math.Pi / 180)
	out := make(Polygon, len(p))
	for i, pt := range p {
		dx, dy := pt.X-c.X, pt.Y-c.Y
		out[i] = Point{
			X: c.X + dx*cos - dy*sin,
			Y: c.Y + dx*sin + dy*cos,
		}
	}
	return out
}

// Translate moves every vertex by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = Point{X: pt.X + dx, Y: pt.Y + dy}
	}
	return out
}

// arcSegments picks how many line segments approximate a quarter circle.
func arcSegments(radius float64) int {
	n := int(math.Ceil(radius))
	if n < 8 {
		n = 8
	}
	return n
}

// topLeftCorner is the square (-0.5,-0.5)..(r-0.5,r-0.5) with the disk of
// radius r centered on its far corner removed.
func topLeftCorner(radius float64) Polygon {
	origin := -0.5
	far := radius - 0.5
	n := arcSegments(radius)

	shape := make(Polygon, 0, n+2)
	shape = append(shape, Point{origin, origin}, Point{far, origin})
	for i := 1; i <= n; i++ {
		theta := -math.Pi/2 - (math.Pi/2)*float64(i)/float64(n)
		shape = append(shape, Point{
			X: far + radius*math.Cos(theta),
			Y: far + radius*math.Sin(theta),
		})
	}
	return shape
}

// BuildCorners returns the four cutout shapes for an image of the given size,
// in the order top-left, bottom-left, top-right, bottom-right.
func BuildCorners(width, height int, radius float64) ([]Polygon, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidGeometry, width, height)
	}
	if radius <= 0 || math.IsNaN(radius) || radius*2 > float64(min(width, height)) {
		return nil, fmt.Errorf("%w: radius %v for size %dx%d", ErrInvalidGeometry, radius, width, height)
	}

	topLeft := topLeftCorner(radius)

	bw, bh := topLeft.Bounds().PixelExtent()
	rightPos := float64(width - bw + 1)
	bottomPos := float64(height - bh + 1)

	topRight := topLeft.RotateDegree(90).Translate(rightPos, 0)
	bottomLeft := topLeft.RotateDegree(-90).Translate(0, bottomPos)
	bottomRight := topLeft.RotateDegree(180).Translate(rightPos, bottomPos)

	return []Polygon{topLeft, bottomLeft, topRight, bottomRight}, nil
}

// cornerMask rasterizes the shapes into an anti-aliased coverage mask.
func cornerMask(width, height int, shapes []Polygon) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	z := vector.NewRasterizer(width, height)
	for _, shape := range shapes {
		if len(shape) < 3 {
			continue
		}
		z.Reset(width, height)
		z.MoveTo(toRaster(shape[0], width, height))
		for _, pt := range shape[1:] {
			z.LineTo(toRaster(pt, width, height))
		}
		z.ClosePath()
		z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	}
	return mask
}

// toRaster shifts a point from pixel-center to pixel-edge coordinates and
// clamps it to the raster.
func toRaster(pt Point, width, height int) (float32, float32) {
	x := math.Max(0, math.Min(float64(width), pt.X+0.5))
	y := math.Max(0, math.Min(float64(height), pt.Y+0.5))
	return float32(x), float32(y)
}

// ApplyRoundedCorners punches the corner cutouts out of img in place. Alpha is
// scaled by the uncovered fraction of each pixel (destination-out); color is kept.
func ApplyRoundedCorners(img *image.NRGBA, radius float64) error {
	b := img.Bounds()
	shapes, err := BuildCorners(b.Dx(), b.Dy(), radius)
	if err != nil {
		return err
	}
	mask := cornerMask(b.Dx(), b.Dy(), shapes)

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			m := mask.AlphaAt(x, y).A
			if m == 0 {
				continue
			}
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			a := uint32(img.Pix[i+3])
			img.Pix[i+3] = uint8(a * uint32(255-m) / 255)
		}
	}
	return nil
}
