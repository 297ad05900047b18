package geom_test

import (
	"fmt"
	"testing"

	"github.com/plus3/skiff/geom"
	"github.com/stretchr/testify/assert"
)

func TestBoxAccessors(t *testing.T) {
	tests := []geom.Box{
		{X: 0, Y: 0, Width: 0, Height: 0},
		{X: 1, Y: 2, Width: 3, Height: 4},
		{X: -5, Y: 7.5, Width: 10, Height: 0.25},
	}

	for _, b := range tests {
		t.Run(fmt.Sprintf("%v", b), func(t *testing.T) {
			assert.Equal(t, b.X, b.Left())
			assert.Equal(t, b.Y, b.Top())
			assert.Equal(t, b.X+b.Width, b.Right())
			assert.Equal(t, b.Y+b.Height, b.Bottom())
		})
	}
}

func TestPointInBoxEdgesInclusive(t *testing.T) {
	b := geom.NewBox(10, 20, 30, 40)

	inside := []geom.Point{
		{X: 10, Y: 20}, // top-left corner
		{X: 40, Y: 60}, // bottom-right corner
		{X: 10, Y: 40}, // left edge
		{X: 40, Y: 40}, // right edge
		{X: 25, Y: 20}, // top edge
		{X: 25, Y: 60}, // bottom edge
		{X: 25, Y: 40},
	}
	for _, p := range inside {
		assert.True(t, geom.PointInBox(b, p), "expected %v inside %v", p, b)
	}

	outside := []geom.Point{
		{X: 9.999, Y: 40},
		{X: 40.001, Y: 40},
		{X: 25, Y: 19.999},
		{X: 25, Y: 60.001},
		{X: 100, Y: 100},
	}
	for _, p := range outside {
		assert.False(t, geom.PointInBox(b, p), "expected %v outside %v", p, b)
	}
}

func TestBoxOverlapsBox(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Box
		want bool
	}{
		{"corner inside", geom.NewBox(0, 0, 10, 10), geom.NewBox(5, 5, 10, 10), true},
		{"b inside a", geom.NewBox(0, 0, 10, 10), geom.NewBox(5, 5, 2, 2), true},
		{"disjoint", geom.NewBox(0, 0, 10, 10), geom.NewBox(100, 100, 2, 2), false},
		{"touching edge", geom.NewBox(0, 0, 10, 10), geom.NewBox(10, 0, 5, 5), true},
		{"zero box at origin", geom.NewBox(0, 0, 10, 10), geom.Box{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geom.BoxOverlapsBox(tt.a, tt.b))
		})
	}
}

func TestBoxOverlapsBoxAsymmetry(t *testing.T) {
	outer := geom.NewBox(0, 0, 100, 100)
	inner := geom.NewBox(40, 40, 10, 10)

	// every corner of inner lies inside outer
	assert.True(t, geom.BoxOverlapsBox(outer, inner))
	// no corner of outer lies inside inner: the documented false negative
	assert.False(t, geom.BoxOverlapsBox(inner, outer))

	// a cross shape: neither box holds a corner of the other
	wide := geom.NewBox(0, 40, 100, 10)
	tall := geom.NewBox(40, 0, 10, 100)
	assert.False(t, geom.BoxOverlapsBox(wide, tall))
	assert.False(t, geom.BoxOverlapsBox(tall, wide))
}

func TestEncloseTakesFieldwiseMax(t *testing.T) {
	got := geom.Enclose(
		geom.NewBox(5, 1, 2, 30),
		geom.NewBox(1, 8, 20, 3),
	)
	assert.Equal(t, geom.NewBox(5, 8, 20, 30), got)

	assert.Equal(t, geom.Box{}, geom.Enclose())
	// negative origins never pull the result below zero
	assert.Equal(t, geom.NewBox(0, 0, 4, 4), geom.Enclose(geom.NewBox(-10, -10, 4, 4)))
}

func TestBoxEmpty(t *testing.T) {
	assert.True(t, geom.Box{}.Empty())
	assert.True(t, geom.NewBox(1, 1, 5, 0).Empty())
	assert.False(t, geom.NewBox(1, 1, 5, 5).Empty())
}
