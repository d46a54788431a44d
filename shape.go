package surf

// Rings returns concentric 0/1 bands of width s around the origin: the
// striping of the sample point's radius, with the origin itself fixed at
// 1. The conventional period is 1. A non-positive period yields the zero
// surface.
func Rings(s Real) Surface {
	if s <= 0 {
		Logger().Debug("non-positive period", "generator", "Rings", "s", s)
		return Plain()
	}
	st := Stripes(s)
	return func(p Point) Real {
		if p.X == 0 && p.Y == 0 {
			return 1
		}
		return st(Pt(p.Length(), 0))
	}
}

// Ellipse returns the filled ellipse with semi-axes a and b: 1 inside or
// on the boundary, 0 outside. Non-positive semi-axes yield the zero
// surface.
func Ellipse(a, b Real) Surface {
	if a <= 0 || b <= 0 {
		Logger().Debug("non-positive semi-axis", "generator", "Ellipse", "a", a, "b", b)
		return Plain()
	}
	return func(p Point) Real {
		if p.X*p.X/(a*a)+p.Y*p.Y/(b*b) <= 1 {
			return 1
		}
		return 0
	}
}

// Rectangle returns the filled axis-aligned box [-a, a] x [-b, b]: 1
// inside or on the boundary, 0 outside. Non-positive half-extents yield
// the zero surface.
func Rectangle(a, b Real) Surface {
	if a <= 0 || b <= 0 {
		Logger().Debug("non-positive half-extent", "generator", "Rectangle", "a", a, "b", b)
		return Plain()
	}
	return func(p Point) Real {
		if -a <= p.X && p.X <= a && -b <= p.Y && p.Y <= b {
			return 1
		}
		return 0
	}
}
