package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	d := Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4})
	assert.InDelta(t, 5.0, d, 1e-9)

	d = Distance(Point{X: 1, Y: 1}, Point{X: 1, Y: 1})
	assert.Zero(t, d)
}

func TestBoundsCenterAndPerimeter(t *testing.T) {
	t.Parallel()

	b := Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 4}
	assert.Equal(t, Point{X: 5, Y: 2}, b.Center())
	assert.InDelta(t, 28.0, b.Perimeter(), 1e-9)
}

func TestPerimeterT(t *testing.T) {
	t.Parallel()

	b := Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 4}

	cases := []struct {
		name string
		p    Point
		want float64
	}{
		{"top-left corner", Point{X: 0, Y: 0}, 0},
		{"top edge midpoint", Point{X: 5, Y: 0}, 5},
		{"top-right corner", Point{X: 10, Y: 0}, 10},
		{"right edge midpoint", Point{X: 10, Y: 2}, 12},
		{"bottom-right corner", Point{X: 10, Y: 4}, 14},
		{"bottom edge midpoint", Point{X: 5, Y: 4}, 19},
		{"bottom-left corner", Point{X: 0, Y: 4}, 24},
		{"left edge midpoint", Point{X: 0, Y: 2}, 26},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tc.want, b.PerimeterT(tc.p), 1e-9)
		})
	}
}

func TestChordsCross(t *testing.T) {
	t.Parallel()

	const period = 28.0

	// Interleaving chords: (0, 14) and (7, 21) — 7 is inside (0,14), 21 is not.
	assert.True(t, ChordsCross(0, 14, 7, 21, period))

	// Nested, non-interleaving chords: (0, 20) and (5, 10) — both inside.
	assert.False(t, ChordsCross(0, 20, 5, 10, period))

	// Disjoint chords: (0, 5) and (10, 15) — neither inside.
	assert.False(t, ChordsCross(0, 5, 10, 15, period))

	// Chord wrapping through the origin: (25, 3) spans the wrap point.
	assert.True(t, ChordsCross(25, 3, 1, 10, period))
}

func TestTransform(t *testing.T) {
	t.Parallel()

	tr := Translate(2, 3).Compose(Scale(2, 2))
	got := tr.Apply(Point{X: 1, Y: 1})
	// Translate first: (3,4); then scale by 2: (6,8).
	assert.Equal(t, Point{X: 6, Y: 8}, got)

	id := Identity()
	p := Point{X: 5, Y: -2}
	assert.Equal(t, p, id.Apply(p))
}
