// Package surf provides composable scalar surfaces over the 2D plane.
//
// # Overview
//
// surf is a small combinator library for procedural patterns. A Surface
// is a pure function from a Point to a Real value. Primitive generators
// (Stripes, Checker, Rings, Ellipse, ...) build basic patterns, and
// transform combinators (Rotate, Translate, Scale, ...) wrap an existing
// Surface in a new one. Everything is a closure: there is no scene graph,
// no state, and no I/O.
//
// # Quick Start
//
//	import "github.com/gogpu/surf"
//
//	// A checkerboard, rotated 45 degrees and shifted.
//	s := surf.Translate(surf.Rotate(surf.Checker(1), 45), surf.Pt(0.5, 0))
//
//	// Sample it anywhere.
//	v := s(surf.Pt(3, 7))
//
// # Composition Model
//
// Combinators capture their inputs by value at construction time and
// evaluate lazily per sample point. Chaining is order-sensitive:
// Rotate(Translate(f, v), deg) rotates the translated pattern, while
// Translate(Rotate(f, deg), v) shifts the rotated one.
//
// # Degenerate Parameters
//
// There are no error returns. Non-positive periods and extents yield the
// zero surface, and a zero scale factor yields +Inf, so combinators can
// be chained freely without error plumbing. NaN and infinities propagate
// through ordinary floating-point arithmetic.
//
// # Concurrency
//
// Surfaces hold no mutable state and are safe to sample from any number
// of goroutines without synchronization.
package surf

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
