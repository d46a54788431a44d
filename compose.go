package surf

// Iden returns its argument unchanged. It is the left and right unit of
// Compose and Comp. (Identity names the identity Matrix.)
func Iden[T any](v T) T {
	return v
}

// Compose chains functions left to right: Compose(f1, f2, f3)(x) is
// f3(f2(f1(x))). With no arguments it returns the identity function.
//
// All stages share one type; heterogeneous chains are built by nesting
// Comp instead. Go has no variadic type parameters, so this homogeneous
// form covers the common Surface-to-Surface and Point-to-Point
// pipelines.
//
// Example:
//
//	decorate := surf.Compose(
//		func(f surf.Surface) surf.Surface { return surf.Rotate(f, 45) },
//		func(f surf.Surface) surf.Surface { return surf.Mul(f, 2) },
//	)
//	s := decorate(surf.Checker(1))
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

// Comp is left-to-right composition of two functions of arbitrary types:
// Comp(f, g)(x) == g(f(x)). Longer heterogeneous chains nest:
// Comp(Comp(f, g), h).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Evaluate lifts an n-ary scalar function into the Surface domain: the
// result samples every fs[i] at the point and passes the values
// positionally to h. With no surfaces the point is ignored and h is
// called with no values, which turns a scalar constant function into a
// Surface.
//
// Example:
//
//	// The pointwise product of two patterns.
//	prod := surf.Evaluate(func(vs ...surf.Real) surf.Real {
//		return vs[0] * vs[1]
//	}, surf.Rings(1), surf.Checker(1))
func Evaluate(h func(...Real) Real, fs ...Surface) Surface {
	if len(fs) == 0 {
		return func(Point) Real {
			return h()
		}
	}
	return func(p Point) Real {
		vs := make([]Real, len(fs))
		for i, f := range fs {
			vs[i] = f(p)
		}
		return h(vs...)
	}
}
