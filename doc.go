// Package casteljau provides the small amount of 2D geometry needed by an
// interactive cubic Bézier playground: points, vectors, sizes, rectangles,
// affine transforms, and a cubic Bézier that exposes its De Casteljau
// construction.
//
// # Points and vectors
//
// [Point] is a position and [Vec2] is a displacement. The two are kept apart
// so that the type system catches mistakes like adding two positions;
// subtracting two points yields a vector, and translating a point by a vector
// yields a point. Converting between the two is an explicit type conversion,
// as in Vec2(pt).
//
// All types are plain values. Operations return new values and never mutate
// their receivers. NaN and infinities propagate according to IEEE 754 and are
// not treated specially.
//
// # Cubic Béziers
//
// [CubicBez] evaluates its curve with the De Casteljau algorithm rather than
// the Bernstein polynomial, because the intermediate points of the
// construction are themselves of interest: [CubicBez.Construct] returns the
// three first-level points A, B, C, the two second-level points D, E, and the
// point on the curve. The parameter t is clamped to [0, 1], so evaluation never
// extrapolates beyond the control polygon's convex hull.
//
// # Coordinate spaces
//
// The package is agnostic about orientation, but the rest of this module works
// in a y-down space, as is common for graphics. [Affine] maps between world
// and screen space; see [Rotate] for the rotation convention.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package casteljau
