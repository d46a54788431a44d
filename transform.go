package surf

import "math"

// Rotate returns f rotated by deg degrees around the origin. The sample
// point is pre-rotated by -deg, so the pattern itself appears rotated by
// +deg; chained transforms compose as f(transform(p)).
func Rotate(f Surface, deg Real) Surface {
	sin, cos := math.Sincos(deg / 180 * math.Pi)
	return func(p Point) Real {
		return f(Pt(p.X*cos+p.Y*sin, p.Y*cos-p.X*sin))
	}
}

// Translate returns f shifted by the vector v: the result at p is f at
// p - v.
func Translate(f Surface, v Point) Surface {
	return func(p Point) Real {
		return f(p.Sub(v))
	}
}

// Scale returns f stretched by s.X along x and s.Y along y. A zero
// component makes the result +Inf everywhere rather than failing, so
// scaled surfaces stay total.
func Scale(f Surface, s Point) Surface {
	if s.X == 0 || s.Y == 0 {
		Logger().Debug("zero scale factor", "combinator", "Scale", "s", s)
	}
	return func(p Point) Real {
		if s.X == 0 || s.Y == 0 {
			return math.Inf(1)
		}
		return f(Pt(p.X/s.X, p.Y/s.Y))
	}
}

// Invert returns f with the two axes swapped: the result at (x, y) is f
// at (y, x). Invert is its own inverse.
func Invert(f Surface) Surface {
	return func(p Point) Real {
		return f(Pt(p.Y, p.X))
	}
}

// Flip returns f mirrored across the y axis: the result at (x, y) is f
// at (-x, y).
func Flip(f Surface) Surface {
	return func(p Point) Real {
		return f(Pt(-p.X, p.Y))
	}
}

// Affine returns f sampled through the affine transform m: the result at
// p is f at m.Apply(p). To move the pattern rather than the sampling
// frame, pass the inverse of the pattern's transform.
//
// Affine is the matrix-valued generalization of Rotate, Translate and
// Scale; use it when several transforms should be pre-composed into one
// point operation.
func Affine(f Surface, m Matrix) Surface {
	return func(p Point) Real {
		return f(m.Apply(p))
	}
}

// Warp returns f sampled through an arbitrary point mapping: the result
// at p is f at w(p). Every point-side combinator in this package is a
// special case of Warp.
func Warp(f Surface, w func(Point) Point) Surface {
	return func(p Point) Real {
		return f(w(p))
	}
}
