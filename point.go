package surf

import (
	"math"
	"strconv"
)

// Point represents a 2D point or vector on the sampled plane.
// Points are plain values: construct once, never mutate.
type Point struct {
	X, Y Real
}

// Pt is a convenience function to create a Point.
func Pt(x, y Real) Point {
	return Point{X: x, Y: y}
}

// String renders the point as "x y" for diagnostics and logging.
func (p Point) String() string {
	return strconv.FormatFloat(p.X, 'g', -1, 64) + " " +
		strconv.FormatFloat(p.Y, 'g', -1, 64)
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s Real) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the distance from the origin.
func (p Point) Length() Real {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle Real) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
