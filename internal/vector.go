package internal

import "math"

// ZeroTolerance decides when a length, or a cross product of two unit
// directions, is effectively zero. It is a fixed property of the library,
// deliberately distinct from the caller-supplied snap tolerance: snap
// describes how sloppy the caller's geometry is allowed to be, while
// ZeroTolerance describes where our own arithmetic degenerates. Directions
// whose cross product falls below it are treated as parallel.
const ZeroTolerance = 1e-9

func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y}
}

func (p Point) Translate(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Offset walks t units from p along dir.
func (p Point) Offset(dir UnitVector, t float64) Point {
	return Point{p.X + dir.X*t, p.Y + dir.Y*t}
}

func Midpoint(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross is the scalar 2D cross product (the z component of the 3D one). Its
// sign says which side of v the vector w points to: positive means w is
// counterclockwise from v.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Unitize scales v to length 1. A vector at or near zero length has no
// direction; that's the caller handing us degenerate geometry, and it fails
// fast here rather than surfacing as garbage parameters somewhere deep in
// the relation classifier.
func (v Vector) Unitize() UnitVector {
	length := v.Length()
	if length < ZeroTolerance {
		fatalf("cannot unitize zero-length vector (%v, %v)", v.X, v.Y)
	}
	return UnitVector{v.X / length, v.Y / length}
}

// UnitizeUnchecked is Unitize without the zero-length check, for callers
// that have already established the length is sane.
func (v Vector) UnitizeUnchecked() UnitVector {
	length := v.Length()
	return UnitVector{v.X / length, v.Y / length}
}

func (u UnitVector) Vector() Vector {
	return Vector{u.X, u.Y}
}

// Scale turns a direction into a displacement of the given length.
func (u UnitVector) Scale(t float64) Vector {
	return Vector{u.X * t, u.Y * t}
}

// Perp is u rotated 90° counterclockwise. Rotation preserves length, so the
// result is still a unit vector.
func (u UnitVector) Perp() UnitVector {
	return UnitVector{-u.Y, u.X}
}

func (u UnitVector) Neg() UnitVector {
	return UnitVector{-u.X, -u.Y}
}

func (u UnitVector) Dot(w UnitVector) float64 {
	return u.X*w.X + u.Y*w.Y
}

func (u UnitVector) Cross(w UnitVector) float64 {
	return u.X*w.Y - u.Y*w.X
}
