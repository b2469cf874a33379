package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	v := Vec3{1, 2, 3}
	w := Vec3{4, 5, 6}

	assert.Equal(t, Vec3{5, 7, 9}, v.Add(w))
	assert.Equal(t, Vec3{2, 4, 6}, v.Scale(2))
	assert.InDelta(t, 32.0, v.Dot(w), 1e-12)
	assert.Equal(t, Vec3{-3, 6, -3}, v.Cross(w))
	assert.InDelta(t, 3.0, Vec3{2, 2, 1}.Length(), 1e-12)

	unit := Vec3{0, 0, 5}.Unitize()
	assert.Equal(t, Vec3{0, 0, 1}, unit)
	assert.Panics(t, func() {
		Vec3{0, 0, 0}.Unitize()
	})
}

func TestPlaneIntersectLine(t *testing.T) {
	// The plane z = 5.
	plane := PlaneThrough(Point3{0, 0, 5}, Vec3{0, 0, 2})
	assert.InDelta(t, 1.0, plane.Normal.Length(), 1e-12)

	t.Run("transversal hit", func(t *testing.T) {
		line := Line3{Origin: Point3{1, 2, 0}, Dir: Vec3{0, 0, 1}}
		hit, ok := plane.IntersectLine(line)
		require.True(t, ok)
		assert.InDelta(t, 1.0, hit.X, 1e-12)
		assert.InDelta(t, 2.0, hit.Y, 1e-12)
		assert.InDelta(t, 5.0, hit.Z, 1e-12)
	})

	t.Run("hit from an oblique direction", func(t *testing.T) {
		line := Line3{Origin: Point3{0, 0, 0}, Dir: Vec3{1, 0, 1}.Unitize()}
		hit, ok := plane.IntersectLine(line)
		require.True(t, ok)
		assert.InDelta(t, 5.0, hit.X, 1e-9)
		assert.InDelta(t, 5.0, hit.Z, 1e-9)
	})

	t.Run("parallel line misses", func(t *testing.T) {
		line := Line3{Origin: Point3{0, 0, 0}, Dir: Vec3{1, 0, 0}}
		_, ok := plane.IntersectLine(line)
		assert.False(t, ok)
	})

	t.Run("line inside the plane reports no hit", func(t *testing.T) {
		line := Line3{Origin: Point3{0, 0, 5}, Dir: Vec3{1, 0, 0}}
		_, ok := plane.IntersectLine(line)
		assert.False(t, ok)
	})
}

func TestTriangleIntersectLine(t *testing.T) {
	tri := Triangle3{
		A: Point3{0, 0, 0},
		B: Point3{10, 0, 0},
		C: Point3{0, 10, 0},
	}
	vertical := Vec3{0, 0, 1}

	t.Run("hit inside", func(t *testing.T) {
		line := Line3{Origin: Point3{1, 1, -5}, Dir: vertical}
		hit, ok := tri.IntersectLine(line)
		require.True(t, ok)
		assert.InDelta(t, 1.0, hit.X, 1e-12)
		assert.InDelta(t, 1.0, hit.Y, 1e-12)
		assert.InDelta(t, 0.0, hit.Z, 1e-12)
	})

	t.Run("hit on an edge", func(t *testing.T) {
		line := Line3{Origin: Point3{5, 0, 3}, Dir: vertical}
		_, ok := tri.IntersectLine(line)
		assert.True(t, ok)
	})

	t.Run("miss outside", func(t *testing.T) {
		line := Line3{Origin: Point3{6, 6, -5}, Dir: vertical}
		_, ok := tri.IntersectLine(line)
		assert.False(t, ok)
	})

	t.Run("parallel to the plane", func(t *testing.T) {
		line := Line3{Origin: Point3{1, 1, 1}, Dir: Vec3{1, 0, 0}}
		_, ok := tri.IntersectLine(line)
		assert.False(t, ok)
	})

	t.Run("hit behind the origin still reported", func(t *testing.T) {
		// The query is over the infinite line, not a ray.
		line := Line3{Origin: Point3{1, 1, 5}, Dir: vertical}
		hit, ok := tri.IntersectLine(line)
		require.True(t, ok)
		assert.InDelta(t, 0.0, hit.Z, 1e-12)
	})
}
