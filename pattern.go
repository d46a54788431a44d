package surf

import "math"

// Plain returns the zero surface: 0 everywhere.
func Plain() Surface {
	return func(Point) Real { return 0 }
}

// Slope returns a surface whose value is the x coordinate of the sample
// point. Useful as a ramp, and as the raw material for Mul/Add shaping.
func Slope() Surface {
	return func(p Point) Real { return p.X }
}

// Sqr returns a parabolic surface: x squared.
func Sqr() Surface {
	return func(p Point) Real { return p.X * p.X }
}

// SinWave returns sin(x) as a surface.
func SinWave() Surface {
	return func(p Point) Real { return math.Sin(p.X) }
}

// CosWave returns cos(x) as a surface.
func CosWave() Surface {
	return func(p Point) Real { return math.Cos(p.X) }
}

// Steps returns a staircase along x: floor(x/s), rising one unit every
// period s. The conventional period is 1. A non-positive period yields
// the zero surface.
func Steps(s Real) Surface {
	if s <= 0 {
		Logger().Debug("non-positive period", "generator", "Steps", "s", s)
		return Plain()
	}
	return func(p Point) Real {
		return math.Floor(p.X / s)
	}
}

// Stripes returns 0/1 banding along x with period s. The conventional
// period is 1. A non-positive period yields the zero surface.
//
// Band boundaries are deliberately asymmetric: for positive x an exact
// multiple of s belongs to the band below it, any other x to the band
// above; for x <= 0 the band index is simply floor(-x/s). The two sides
// of the y axis are not mirror images, and patterns built on top of
// Stripes (Checker, Rings) depend on that banding staying put.
func Stripes(s Real) Surface {
	if s <= 0 {
		Logger().Debug("non-positive period", "generator", "Stripes", "s", s)
		return Plain()
	}
	return func(p Point) Real {
		if p.X > 0 {
			q := p.X / s
			n := math.Floor(q)
			if math.Trunc(q) != q {
				n++
			}
			return math.Mod(n, 2)
		}
		return math.Mod(math.Floor(-p.X/s), 2)
	}
}

// Checker returns a 2D checkerboard with square size s, built from two
// diagonal reflections of Stripes summed mod 2. The conventional period
// is 1. A non-positive period yields the zero surface.
func Checker(s Real) Surface {
	if s <= 0 {
		Logger().Debug("non-positive period", "generator", "Checker", "s", s)
		return Plain()
	}
	st := Stripes(s)
	return func(p Point) Real {
		return math.Mod(st(Pt(-p.X, -p.Y))+st(Pt(-p.Y, -p.X))+1, 2)
	}
}
