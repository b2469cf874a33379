package internal

import "math"

// 3D support: the handful of closed-form queries the 2D pipeline needs when
// profiles live on planes in space. Nothing here is iterative and nothing
// uses the snap tolerance ladder; a line either hits a plane or runs along
// it within ZeroTolerance.

type Point3 struct {
	X, Y, Z float64
}

type Vec3 struct {
	X, Y, Z float64
}

func (p Point3) Sub(q Point3) Vec3 {
	return Vec3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

func (p Point3) Translate(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Unitize() Vec3 {
	length := v.Length()
	if length < ZeroTolerance {
		fatalf("cannot unitize zero-length vector (%v, %v, %v)", v.X, v.Y, v.Z)
	}
	return v.Scale(1 / length)
}

// A Line3 is an infinite line through Origin along a unit Dir.
type Line3 struct {
	Origin Point3
	Dir    Vec3
}

// A Plane is the set of points p with Normal·p == Offset. Normal is unit
// length.
type Plane struct {
	Normal Vec3
	Offset float64
}

// PlaneThrough is the plane containing p with the given (not necessarily
// unit) normal.
func PlaneThrough(p Point3, normal Vec3) Plane {
	unit := normal.Unitize()
	return Plane{Normal: unit, Offset: unit.Dot(Vec3(p))}
}

// IntersectLine finds where the line meets the plane. The second return is
// false when the line runs parallel to the plane (within ZeroTolerance),
// which includes lying inside it.
func (pl Plane) IntersectLine(l Line3) (Point3, bool) {
	along := pl.Normal.Dot(l.Dir)
	if math.Abs(along) <= ZeroTolerance {
		return Point3{}, false
	}
	t := (pl.Offset - pl.Normal.Dot(Vec3(l.Origin))) / along
	return l.Origin.Translate(l.Dir.Scale(t)), true
}

type Triangle3 struct {
	A, B, C Point3
}

// IntersectLine finds where the infinite line pierces the triangle,
// including its edges. The second return is false when the line is parallel
// to the triangle's plane or the hit lands outside the triangle.
func (tr Triangle3) IntersectLine(l Line3) (Point3, bool) {
	edge1 := tr.B.Sub(tr.A)
	edge2 := tr.C.Sub(tr.A)

	h := l.Dir.Cross(edge2)
	det := edge1.Dot(h)
	if math.Abs(det) <= ZeroTolerance {
		return Point3{}, false
	}

	inv := 1 / det
	s := l.Origin.Sub(tr.A)
	u := inv * s.Dot(h)
	if u < 0 || u > 1 {
		return Point3{}, false
	}

	q := s.Cross(edge1)
	v := inv * l.Dir.Dot(q)
	if v < 0 || u+v > 1 {
		return Point3{}, false
	}

	t := inv * edge2.Dot(q)
	return l.Origin.Translate(l.Dir.Scale(t)), true
}
