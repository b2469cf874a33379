package internal

import "math"

// Polyline processing built on the relation classifier. This is the shape of
// the pipeline every consumer is expected to follow: convert once to segment
// descriptors, filter candidate pairs by bounding box, and only then pay for
// classification.

// Segments converts consecutive point pairs to segment descriptors.
// Degenerate edges (consecutive points closer than ZeroTolerance) are
// dropped rather than thrown: repeated points are routine in traced input
// and carry no geometry.
func (pl Polyline) Segments() []Segment {
	segments := make([]Segment, 0, len(pl.Points))
	for i := 1; i < len(pl.Points); i++ {
		start := pl.Points[i-1]
		end := pl.Points[i]
		if end.Sub(start).Length() < ZeroTolerance {
			continue
		}
		segments = append(segments, SegmentBetween(start, end))
	}
	return segments
}

func (pl Polyline) BBox() BBox {
	return BBoxAround(pl.Points...)
}

// A Crossing records that segments I and J of a polyline touch, and where.
// For colinear contact At is the endpoint average, not a true contact point.
type Crossing struct {
	I, J int
	At   Point
}

// SelfIntersections finds all pairs of non-adjacent segments that intersect
// or touch within snap. Adjacent segments share an endpoint and would always
// touch, so they are skipped. Boxes are expanded by snap before the overlap
// test so that pairs within snap of touching are not filtered away before
// the classifier can see them.
func (pl Polyline) SelfIntersections(snap float64) []Crossing {
	segments := pl.Segments()
	boxes := make([]BBox, len(segments))
	for i, segment := range segments {
		boxes[i] = segment.BBox().Expand(snap)
	}

	var crossings []Crossing
	for i := 0; i < len(segments); i++ {
		for j := i + 2; j < len(segments); j++ {
			if !boxes[i].Overlaps(boxes[j]) {
				continue
			}
			if !SegmentsTouch(segments[i], segments[j], snap) {
				continue
			}
			crossings = append(crossings, Crossing{
				I:  i,
				J:  j,
				At: IntersectionOrMidpoint(segments[i], segments[j], snap),
			})
		}
	}
	return crossings
}

// Offset shifts the polyline sideways by d (positive is to the left of
// travel direction). Each segment is displaced along its perpendicular, and
// consecutive displaced segments are rejoined at the intersection of their
// infinite lines. Joints between nearly parallel segments fall back to the
// midpoint of the two displaced endpoints, which for truly parallel
// neighbors is exact.
func (pl Polyline) Offset(d float64) Polyline {
	segments := pl.Segments()
	if len(segments) == 0 {
		return Polyline{}
	}

	shifted := make([]Segment, len(segments))
	for i, segment := range segments {
		shift := segment.Dir.Perp().Scale(d)
		shifted[i] = Segment{
			Origin: segment.Origin.Translate(shift),
			Dir:    segment.Dir,
			Length: segment.Length,
		}
	}

	points := make([]Point, 0, len(shifted)+1)
	points = append(points, shifted[0].Origin)
	for i := 1; i < len(shifted); i++ {
		prev, next := shifted[i-1], shifted[i]
		cross := prev.Dir.Cross(next.Dir)
		if math.Abs(cross) <= ZeroTolerance {
			points = append(points, Midpoint(prev.End(), next.Origin))
			continue
		}
		t := solveParam(prev.Origin, 1/cross, next.Origin, next.Dir)
		points = append(points, prev.PointAt(t))
	}
	points = append(points, shifted[len(shifted)-1].End())
	return Polyline{Points: points}
}
