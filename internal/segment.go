package internal

// SegmentBetween builds a segment descriptor from two endpoints, paying the
// normalization cost once up front. Coincident (or nearly coincident)
// endpoints have no direction and throw; see throw.go for how that surfaces
// to the public API.
func SegmentBetween(start, end Point) Segment {
	delta := end.Sub(start)
	length := delta.Length()
	if length < ZeroTolerance {
		fatalf("cannot build a segment of zero length at (%v, %v)", start.X, start.Y)
	}
	return Segment{
		Origin: start,
		Dir:    UnitVector{delta.X / length, delta.Y / length},
		Length: length,
	}
}

func (s Segment) End() Point {
	return s.Origin.Offset(s.Dir, s.Length)
}

// PointAt is the point at parameter t along the segment's infinite line.
// t is in direction units, not normalized to [0, 1].
func (s Segment) PointAt(t float64) Point {
	return s.Origin.Offset(s.Dir, t)
}

// Reverse swaps the segment's endpoints.
func (s Segment) Reverse() Segment {
	return Segment{Origin: s.End(), Dir: s.Dir.Neg(), Length: s.Length}
}

func (s Segment) BBox() BBox {
	return BBoxAround(s.Origin, s.End())
}
