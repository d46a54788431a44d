package surf

// Real is the scalar type every surface evaluates to. Standard IEEE-754
// double semantics apply: NaN and infinities propagate through the
// combinators without special handling.
type Real = float64

// Surface is a pure function from a point to a scalar value. It is the
// unit of composition for the whole library: generators produce one,
// combinators wrap one (or several) in a new one, and callers sample the
// result at arbitrary points.
//
// A Surface has no observable state. Combinators capture sub-surfaces
// and parameters by value, so a Surface may be embedded in any number of
// compositions and sampled concurrently without aliasing hazards.
type Surface func(Point) Real

// At samples the surface at (x, y). Shorthand for f(Pt(x, y)).
func (f Surface) At(x, y Real) Real {
	return f(Pt(x, y))
}
