// Geometric primitives for CAD/CAM-style computation in Go.
//
// This package provides 2D points, vectors, segments, and bounding boxes,
// the corresponding 3D plane and triangle queries, and — at its center — a
// tolerance-robust classifier for the relation between two finite segments,
// suitable as the foundation for polygon and polyline boolean operations.
package cadgeom

import "github.com/quillback/cadgeom/internal"

type Point = internal.Point
type Vector = internal.Vector
type UnitVector = internal.UnitVector
type Segment = internal.Segment
type BBox = internal.BBox
type Polyline = internal.Polyline
type Relation = internal.Relation
type RelationKind = internal.RelationKind
type Crossing = internal.Crossing

type Point3 = internal.Point3
type Vec3 = internal.Vec3
type Line3 = internal.Line3
type Plane = internal.Plane
type Triangle3 = internal.Triangle3
type BBox3 = internal.BBox3

const (
	NoIntersection = internal.NoIntersection
	Parallel       = internal.Parallel
	Colinear       = internal.Colinear
	CrossFromRight = internal.CrossFromRight
	CrossFromLeft  = internal.CrossFromLeft
)

// ZeroTolerance is the fixed epsilon below which a cross product of unit
// directions counts as zero, i.e. the directions count as parallel. It is
// not the snap tolerance; see Relate.
const ZeroTolerance = internal.ZeroTolerance

// SegmentBetween builds a segment descriptor — origin, unit direction,
// length — from two endpoints. It returns an error if the endpoints are too
// close together to define a direction.
func SegmentBetween(start, end Point) (segment Segment, err error) {
	defer func() {
		recoveredErr := internal.HandleGeomPanicRecover(recover())
		if recoveredErr != nil {
			segment = Segment{}
			err = recoveredErr
		}
	}()
	return internal.SegmentBetween(start, end), nil
}

// Unitize scales a vector to length 1, or returns an error for a vector at
// or near zero length.
func Unitize(v Vector) (unit UnitVector, err error) {
	defer func() {
		recoveredErr := internal.HandleGeomPanicRecover(recover())
		if recoveredErr != nil {
			unit = UnitVector{}
			err = recoveredErr
		}
	}()
	return v.Unitize(), nil
}

// Relate classifies the geometric relation between two finite segments:
// no intersection, parallel but separate, colinear (overlap undetermined),
// or a crossing from one of the two orientations. snap is the slack within
// which near-misses count as touching. See the internal package for the
// tolerance and tie-break rules.
func Relate(a, b Segment, snap float64) Relation {
	return internal.Relate(a, b, snap)
}

// SegmentsTouch reports whether two segments whose bounding boxes are
// already known to overlap intersect or touch within snap. Callers must run
// the box-overlap test first; without it, a Colinear result does not imply
// contact.
func SegmentsTouch(a, b Segment, snap float64) bool {
	return internal.SegmentsTouch(a, b, snap)
}

// IntersectionOrMidpoint returns the crossing point of two segments, or the
// average of their four endpoints when there is no crossing. The fallback is
// for diagnostic annotation placement only.
func IntersectionOrMidpoint(a, b Segment, snap float64) Point {
	return internal.IntersectionOrMidpoint(a, b, snap)
}
