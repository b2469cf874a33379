package cadgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested.

func TestSegmentBetween(t *testing.T) {
	segment, err := SegmentBetween(Point{X: 0, Y: 0}, Point{X: 3, Y: 4})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, segment.Length, 1e-12)

	_, err = SegmentBetween(Point{X: 1, Y: 1}, Point{X: 1, Y: 1})
	assert.Error(t, err)
}

func TestUnitize(t *testing.T) {
	unit, err := Unitize(Vector{X: 0, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, UnitVector{X: 0, Y: 1}, unit)

	_, err = Unitize(Vector{X: 0, Y: 0})
	assert.Error(t, err)
}

func TestRelate(t *testing.T) {
	a, err := SegmentBetween(Point{X: 0, Y: 0}, Point{X: 10, Y: 0})
	require.NoError(t, err)
	b, err := SegmentBetween(Point{X: 5, Y: -5}, Point{X: 5, Y: 5})
	require.NoError(t, err)

	relation := Relate(a, b, 0.001)
	assert.Equal(t, CrossFromRight, relation.Kind)
	assert.InDelta(t, 5.0, relation.ParamA, 1e-9)
	assert.InDelta(t, 5.0, relation.ParamB, 1e-9)

	assert.True(t, SegmentsTouch(a, b, 0.001))

	point := IntersectionOrMidpoint(a, b, 0.001)
	assert.InDelta(t, 5.0, point.X, 1e-9)
	assert.InDelta(t, 0.0, point.Y, 1e-9)
}
