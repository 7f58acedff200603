package geom

import "math"

// Point is a Euclidean position in the footprint plane.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two points.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of b.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of b.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of b.
func (b Bounds) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Perimeter returns the total perimeter length of b.
func (b Bounds) Perimeter() float64 {
	return 2 * (b.Width() + b.Height())
}

// PerimeterT maps a point known to lie on the boundary of b to a scalar
// t ∈ [0, Perimeter()), tracing the rectangle top→right→bottom→left
// starting at the top-left corner.
//
// p is assumed to already lie on ∂b (exactly one coordinate equal to the
// corresponding bound); callers that compute p from a port position must
// clamp first. Complexity: O(1).
func (b Bounds) PerimeterT(p Point) float64 {
	w, h := b.Width(), b.Height()
	switch {
	case p.Y <= b.MinY: // top edge, left → right
		return clamp(p.X-b.MinX, 0, w)
	case p.X >= b.MaxX: // right edge, top → bottom
		return w + clamp(p.Y-b.MinY, 0, h)
	case p.Y >= b.MaxY: // bottom edge, right → left
		return w + h + clamp(b.MaxX-p.X, 0, w)
	default: // left edge, bottom → top
		return 2*w + h + clamp(b.MaxY-p.Y, 0, h)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InOpenArc reports whether x lies strictly within the arc traced from a
// to b, walking in the direction of increasing t modulo period P. The arc
// is open: x == a or x == b never counts as inside.
func InOpenArc(x, a, b, period float64) bool {
	if a == b {
		return false
	}
	if a < b {
		return x > a && x < b
	}

	return x > a || x < b
}

// ChordsCross reports whether the chord (a,b) and the chord (c,d) —
// expressed as perimeter-t positions on a circle of the given period —
// interleave: exactly one of {c, d} lies in the open arc (a, b).
//
// Complexity: O(1).
func ChordsCross(a, b, c, d, period float64) bool {
	cIn := InOpenArc(c, a, b, period)
	dIn := InOpenArc(d, a, b, period)

	return cIn != dIn
}

// Transform is a 2D affine transform: [x' y'] = [A C; B D]·[x y] + [E F].
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate returns a transform that shifts points by (dx, dy).
func Translate(dx, dy float64) Transform {
	return Transform{A: 1, D: 1, E: dx, F: dy}
}

// Scale returns a transform that scales points by (sx, sy) about the origin.
func Scale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Apply applies t to p.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// Compose returns the transform equivalent to applying t first, then next.
func (t Transform) Compose(next Transform) Transform {
	return Transform{
		A: next.A*t.A + next.C*t.B,
		B: next.B*t.A + next.D*t.B,
		C: next.A*t.C + next.C*t.D,
		D: next.B*t.C + next.D*t.D,
		E: next.A*t.E + next.C*t.F + next.E,
		F: next.B*t.E + next.D*t.F + next.F,
	}
}
