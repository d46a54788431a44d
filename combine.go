package surf

import "math"

// Mul returns f with its output multiplied by c.
func Mul(f Surface, c Real) Surface {
	return func(p Point) Real {
		return f(p) * c
	}
}

// Add returns f with c added to its output.
func Add(f Surface, c Real) Surface {
	return func(p Point) Real {
		return f(p) + c
	}
}

// Min returns the pointwise minimum of two surfaces. For indicator
// surfaces this is the intersection of their regions.
func Min(f, g Surface) Surface {
	return func(p Point) Real {
		return math.Min(f(p), g(p))
	}
}

// Max returns the pointwise maximum of two surfaces. For indicator
// surfaces this is the union of their regions.
func Max(f, g Surface) Surface {
	return func(p Point) Real {
		return math.Max(f(p), g(p))
	}
}

// Abs returns the pointwise absolute value of f.
func Abs(f Surface) Surface {
	return func(p Point) Real {
		return math.Abs(f(p))
	}
}

// Clamp returns f with its output limited to [lo, hi].
func Clamp(f Surface, lo, hi Real) Surface {
	return func(p Point) Real {
		v := f(p)
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
}

// Threshold returns the indicator of f reaching t: 1 where f(p) >= t,
// else 0.
func Threshold(f Surface, t Real) Surface {
	return func(p Point) Real {
		if f(p) >= t {
			return 1
		}
		return 0
	}
}

// Smoothstep returns f with its output remapped through the Hermite
// smoothstep between the edges e0 and e1: 0 at or below e0, 1 at or
// above e1, with a smooth cubic transition in between.
func Smoothstep(f Surface, e0, e1 Real) Surface {
	return func(p Point) Real {
		t := (f(p) - e0) / (e1 - e0)
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return t * t * (3 - 2*t)
	}
}

// Lerp returns the pointwise linear blend of two surfaces: f at t=0, g
// at t=1, intermediate values interpolate.
func Lerp(f, g Surface, t Real) Surface {
	return func(p Point) Real {
		a := f(p)
		return a + (g(p)-a)*t
	}
}
