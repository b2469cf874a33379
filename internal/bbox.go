package internal

import "math"

// Axis-aligned bounding boxes in 2D and 3D. These exist as a cheap O(1)
// rejection filter: callers working over many candidate segment pairs test
// box overlap first and only run the relation classifier on survivors.

type BBox struct {
	Min, Max Point
}

type BBox3 struct {
	Min, Max Point3
}

// BBoxAround is the smallest box containing all the given points.
func BBoxAround(points ...Point) BBox {
	if len(points) == 0 {
		fatalf("cannot build a bounding box around zero points")
	}
	box := BBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}
	return box
}

func (b BBox) Union(o BBox) BBox {
	return BBox{
		Min: Point{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)},
		Max: Point{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)},
	}
}

func (b BBox) Translate(v Vector) BBox {
	return BBox{Min: b.Min.Translate(v), Max: b.Max.Translate(v)}
}

// Expand grows the box by d on every side. A negative d shrinks it; if that
// would shrink an axis past nothing, the axis collapses to its midpoint
// instead of inverting, so boxes built through Expand always satisfy
// Min <= Max.
func (b BBox) Expand(d float64) BBox {
	expanded := BBox{
		Min: Point{b.Min.X - d, b.Min.Y - d},
		Max: Point{b.Max.X + d, b.Max.Y + d},
	}
	if expanded.Min.X > expanded.Max.X {
		mid := (b.Min.X + b.Max.X) / 2
		expanded.Min.X = mid
		expanded.Max.X = mid
	}
	if expanded.Min.Y > expanded.Max.Y {
		mid := (b.Min.Y + b.Max.Y) / 2
		expanded.Min.Y = mid
		expanded.Max.Y = mid
	}
	return expanded
}

// IsNotValid reports an inverted box (Min > Max on some axis). Normal
// construction never produces one, but a box assembled from raw Min/Max
// values can be in this state, and it must be detectable rather than crash.
func (b BBox) IsNotValid() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Overlaps is the interval-overlap test per axis. Boxes that merely touch
// count as overlapping.
func (b BBox) Overlaps(o BBox) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

func BBox3Around(points ...Point3) BBox3 {
	if len(points) == 0 {
		fatalf("cannot build a bounding box around zero points")
	}
	box := BBox3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Min.Z = math.Min(box.Min.Z, p.Z)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
		box.Max.Z = math.Max(box.Max.Z, p.Z)
	}
	return box
}

func (b BBox3) Union(o BBox3) BBox3 {
	return BBox3{
		Min: Point3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Point3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

func (b BBox3) Expand(d float64) BBox3 {
	expanded := BBox3{
		Min: Point3{b.Min.X - d, b.Min.Y - d, b.Min.Z - d},
		Max: Point3{b.Max.X + d, b.Max.Y + d, b.Max.Z + d},
	}
	if expanded.Min.X > expanded.Max.X {
		mid := (b.Min.X + b.Max.X) / 2
		expanded.Min.X = mid
		expanded.Max.X = mid
	}
	if expanded.Min.Y > expanded.Max.Y {
		mid := (b.Min.Y + b.Max.Y) / 2
		expanded.Min.Y = mid
		expanded.Max.Y = mid
	}
	if expanded.Min.Z > expanded.Max.Z {
		mid := (b.Min.Z + b.Max.Z) / 2
		expanded.Min.Z = mid
		expanded.Max.Z = mid
	}
	return expanded
}

func (b BBox3) IsNotValid() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

func (b BBox3) Overlaps(o BBox3) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}
