// Package raster enumerates the pixels covered by brush footprints.
//
// The footprint of a stroke segment is a capsule: every point within a fixed
// radius of the segment, which gives round caps and round joins when
// consecutive segments share endpoints. Coverage is binary; a pixel (x, y) is
// inside when its integer center lies within the radius. Pointer coordinates
// are whole canvas pixels, so this places the stroke centerline on pixel
// centers.
package raster

import "math"

// MinRadius keeps one-pixel brushes 8-connected along any direction.
const MinRadius = 0.5

// eps absorbs floating-point error on the capsule boundary.
const eps = 1e-9

// Point is a position in canvas pixel space.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Radius returns the footprint radius of a brush of the given diameter.
func Radius(size int) float64 {
	return math.Max(float64(size)/2, MinRadius)
}

// Capsule calls fn once for every pixel of the width×height grid whose center
// lies within radius of segment ab. Pixels are visited row by row.
// A zero-length segment yields a disc.
func Capsule(a, b Point, radius float64, width, height int, fn func(x, y int)) {
	if radius <= 0 || width <= 0 || height <= 0 {
		return
	}

	minX := max(0, int(math.Floor(math.Min(a.X, b.X)-radius)))
	maxX := min(width-1, int(math.Ceil(math.Max(a.X, b.X)+radius)))
	minY := max(0, int(math.Floor(math.Min(a.Y, b.Y)-radius)))
	maxY := min(height-1, int(math.Ceil(math.Max(a.Y, b.Y)+radius)))
	if minX > maxX || minY > maxY {
		return
	}

	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	limit := radius*radius + eps

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if distSqToSegment(Point{X: float64(x), Y: float64(y)}, a, ab, lenSq) <= limit {
				fn(x, y)
			}
		}
	}
}

// Disc calls fn for every pixel within radius of c.
func Disc(c Point, radius float64, width, height int, fn func(x, y int)) {
	Capsule(c, c, radius, width, height, fn)
}

// distSqToSegment returns the squared distance from p to the segment starting
// at a with direction ab (|ab|² = lenSq).
func distSqToSegment(p, a, ab Point, lenSq float64) float64 {
	ap := p.Sub(a)
	t := 0.0
	if lenSq > 0 {
		t = (ap.X*ab.X + ap.Y*ab.Y) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	dx := ap.X - ab.X*t
	dy := ap.Y - ab.Y*t
	return dx*dx + dy*dy
}
