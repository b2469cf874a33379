package internal

import "math"

// This implements the relation classifier for pairs of finite segments: the
// decision engine underneath polygon and polyline boolean operations. The
// geometry is a few lines of cross-product algebra; the work is in making
// the answer total and stable when segments almost touch at their ends, run
// nearly parallel, or cross just outside a segment's nominal parameter
// range. Two tolerances are in play and must not be confused:
//
//   - ZeroTolerance (fixed, see vector.go) decides whether the two
//     directions are parallel at all.
//   - snap (caller-supplied) is how far apart things can be while still
//     counting as touching.

type RelationKind int

const (
	// NoIntersection means the segments diverge enough, even after
	// tolerance offsetting, that no crossing or overlap is possible.
	NoIntersection RelationKind = iota
	// Parallel directions with the lines further apart than snap.
	Parallel
	// Colinear means parallel directions with the lines within snap of each
	// other. Whether the segments actually overlap along the shared line is
	// NOT determined here; the caller combines this with a bounding box
	// check.
	Colinear
	// A genuine transversal crossing with Dir(A) × Dir(B) > 0.
	CrossFromRight
	// A genuine transversal crossing with Dir(A) × Dir(B) <= 0.
	CrossFromLeft
)

func (k RelationKind) String() string {
	switch k {
	case NoIntersection:
		return "NoIntersection"
	case Parallel:
		return "Parallel"
	case Colinear:
		return "Colinear"
	case CrossFromRight:
		return "CrossFromRight"
	case CrossFromLeft:
		return "CrossFromLeft"
	}
	return "Unknown"
}

type Relation struct {
	Kind RelationKind
	// ParamA and ParamB locate the crossing along each segment's direction,
	// in direction units from the origin. They are only meaningful for the
	// two crossing kinds, and they are raw: either may sit outside
	// [0, Length] by up to the snap tolerance. A caller that needs a point
	// on the finite segment clamps them itself.
	ParamA, ParamB float64
}

// Crossed is true for the two crossing kinds.
func (r Relation) Crossed() bool {
	return r.Kind == CrossFromRight || r.Kind == CrossFromLeft
}

// solveParam gives the parameter t at which selfOrigin + t*selfDir meets the
// infinite line through otherOrigin along otherDir. It comes from crossing
// both sides of the ray equality with otherDir:
//
//	t * (selfDir × otherDir) = (otherOrigin - selfOrigin) × otherDir
//
// crossInv is the precomputed 1/(selfDir × otherDir). The caller guarantees
// it is finite (the parallel branch of Relate never gets here), and it is
// precomputed because the offset probes re-solve with the same inverse up to
// four times per pair. No division happens here.
func solveParam(selfOrigin Point, crossInv float64, otherOrigin Point, otherDir UnitVector) float64 {
	return otherOrigin.Sub(selfOrigin).Cross(otherDir.Vector()) * crossInv
}

// The offset probes: a raw parameter just outside [0, Length] is not enough
// to reject a pair. When the segments meet at a shallow angle, sliding the
// evaluation line sideways by snap can swing the computed parameter well
// past the snap band itself. So before rejecting, re-solve from the origin
// shifted by ±perp(Dir)*snap, and reject only if BOTH shifted parameters
// are still out of range. If the two shifts disagree, the case is within
// positional uncertainty and stays alive for the crossing path.

func belowZeroAfterOffset(self Segment, crossInv float64, other Segment, snap float64) bool {
	shift := self.Dir.Perp().Scale(snap)
	plus := solveParam(self.Origin.Translate(shift), crossInv, other.Origin, other.Dir)
	minus := solveParam(self.Origin.Translate(shift.Scale(-1)), crossInv, other.Origin, other.Dir)
	return plus < -snap && minus < -snap
}

func beyondLengthAfterOffset(self Segment, crossInv float64, other Segment, snap float64) bool {
	shift := self.Dir.Perp().Scale(snap)
	plus := solveParam(self.Origin.Translate(shift), crossInv, other.Origin, other.Dir)
	minus := solveParam(self.Origin.Translate(shift.Scale(-1)), crossInv, other.Origin, other.Dir)
	return plus > self.Length+snap && minus > self.Length+snap
}

// Relate classifies the relation between two finite segments under the given
// snap tolerance. All five outcomes are normal results; valid input (unit
// directions, non-negative lengths, non-negative snap) cannot fail.
//
// Rejections are checked on A first and short-circuit before B's parameter
// is ever computed. Most candidate pairs in a spatial search don't
// intersect, and each confirmed rejection saves a solve plus two probe
// solves.
//
// The boundary policy is asymmetric on purpose: a parameter exactly at 0, at
// Length, or anywhere inside the snap band is always accepted as a crossing.
// Rejection requires both offset probes to agree the parameter is out of
// range. Near boundaries this errs toward reporting an intersection, which
// is the safe direction for boolean operations downstream.
func Relate(a, b Segment, snap float64) Relation {
	cross := a.Dir.Cross(b.Dir)
	if math.Abs(cross) <= ZeroTolerance {
		// Parallel directions. The perpendicular separation of the two
		// lines is the origin delta projected onto A's perpendicular,
		// which is the same cross product again.
		separation := a.Dir.Vector().Cross(b.Origin.Sub(a.Origin))
		if math.Abs(separation) < snap {
			return Relation{Kind: Colinear}
		}
		return Relation{Kind: Parallel}
	}

	// Invert once; the solver and all four potential probes reuse it.
	crossInv := 1 / cross

	paramA := solveParam(a.Origin, crossInv, b.Origin, b.Dir)
	if paramA < -snap && belowZeroAfterOffset(a, crossInv, b, snap) {
		return Relation{Kind: NoIntersection}
	}
	if paramA > a.Length+snap && beyondLengthAfterOffset(a, crossInv, b, snap) {
		return Relation{Kind: NoIntersection}
	}

	// B sees the direction cross product with its arguments flipped, so its
	// inverse is just the negation.
	paramB := solveParam(b.Origin, -crossInv, a.Origin, a.Dir)
	if paramB < -snap && belowZeroAfterOffset(b, -crossInv, a, snap) {
		return Relation{Kind: NoIntersection}
	}
	if paramB > b.Length+snap && beyondLengthAfterOffset(b, -crossInv, a, snap) {
		return Relation{Kind: NoIntersection}
	}

	if cross > 0 {
		return Relation{Kind: CrossFromRight, ParamA: paramA, ParamB: paramB}
	}
	return Relation{Kind: CrossFromLeft, ParamA: paramA, ParamB: paramB}
}

// SegmentsTouch reports whether two segments intersect or touch within snap.
// PRECONDITION: the caller has already checked that the segments' bounding
// boxes overlap. The box test is not re-derived here because it is the
// cheaper filter and is meant to run first across many candidate pairs; in
// particular, Colinear counts as touching, which is only correct when the
// boxes are known to overlap along the shared line.
func SegmentsTouch(a, b Segment, snap float64) bool {
	switch Relate(a, b, snap).Kind {
	case Colinear, CrossFromRight, CrossFromLeft:
		return true
	}
	return false
}

// IntersectionOrMidpoint is the crossing point when there is one, lying on
// A's infinite line (not clamped to A's finite range). For the non-crossing
// kinds it falls back to the average of all four endpoints, which is useful
// for placing diagnostic annotations and nothing else.
func IntersectionOrMidpoint(a, b Segment, snap float64) Point {
	relation := Relate(a, b, snap)
	if relation.Crossed() {
		return a.PointAt(relation.ParamA)
	}
	aEnd, bEnd := a.End(), b.End()
	return Point{
		X: (a.Origin.X + aEnd.X + b.Origin.X + bEnd.X) / 4,
		Y: (a.Origin.Y + aEnd.Y + b.Origin.Y + bEnd.Y) / 4,
	}
}
