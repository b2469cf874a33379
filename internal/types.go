package internal

// Everything in this package is a plain float64 value type. Nothing is
// mutated after construction; operations that look like updates (expand,
// union, translate) return fresh values. That makes every function here
// reentrant with no coordination.

type Point struct {
	X float64
	Y float64
}

type Vector struct {
	X float64
	Y float64
}

// A UnitVector is a direction: a vector whose length is 1. The invariant is
// established by Unitize and then assumed, unchecked, on the hot paths in
// relate.go. Building one by hand from non-unit components silently produces
// wrong crossing parameters, so don't.
type UnitVector struct {
	X float64
	Y float64
}

// A Segment is a finite directed segment running from Origin to
// Origin.Offset(Dir, Length). Note this is not a two-endpoint segment type:
// the direction is pre-unitized and the length pre-computed by the caller
// (see SegmentBetween), so the relation classifier never normalizes anything
// while it works.
type Segment struct {
	Origin Point
	Dir    UnitVector
	Length float64
}

type Polyline struct {
	Points []Point
}
