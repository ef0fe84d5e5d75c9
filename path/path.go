package path

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Fixed is a 52.12 fixed-point scalar.
type Fixed = fixed.Int52_12

// Point is a 2D point in 52.12 fixed-point coordinates.
type Point = fixed.Point52_12

// One is the fixed-point representation of 1.0.
const One Fixed = 1 << 12

// F converts a float64 to the nearest Fixed value.
func F(v float64) Fixed {
	return Fixed(math.Round(v * float64(One)))
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: F(x), Y: F(y)}
}

// IPt returns the point (x, y) with integer coordinates.
func IPt(x, y int) Point {
	return Point{X: Fixed(x) << 12, Y: Fixed(y) << 12}
}

// Path is an ordered sequence of points forming a polyline or polygon.
// The zero value is an empty path ready to use.
type Path struct {
	points []Point
}

// New returns an empty path with room for capacity points.
func New(capacity int) *Path {
	return &Path{points: make([]Point, 0, capacity)}
}

// FromPoints returns a path holding a copy of pts.
func FromPoints(pts ...Point) *Path {
	p := New(len(pts))
	p.points = append(p.points, pts...)
	return p
}

// Push appends points and returns p for chaining.
func (p *Path) Push(pts ...Point) *Path {
	p.points = append(p.points, pts...)
	return p
}

// Pop removes and returns the last point. It reports false on an empty path.
func (p *Path) Pop() (Point, bool) {
	n := len(p.points)
	if n == 0 {
		return Point{}, false
	}
	pt := p.points[n-1]
	p.points = p.points[:n-1]
	return pt, true
}

// Len returns the number of points.
func (p *Path) Len() int { return len(p.points) }

// At returns the i-th point.
func (p *Path) At(i int) Point { return p.points[i] }

// Points returns the points of p. The slice shares storage with the path
// and is only valid until the next mutation.
func (p *Path) Points() []Point { return p.points }

// Reset empties the path, keeping its storage.
func (p *Path) Reset() { p.points = p.points[:0] }

// Clone returns an independent copy of p.
func (p *Path) Clone() *Path { return FromPoints(p.points...) }

// Translate shifts every point by d.
func (p *Path) Translate(d Point) *Path {
	for i := range p.points {
		p.points[i] = p.points[i].Add(d)
	}
	return p
}

// Bounds returns the bounding box of the points.
// An empty path has an empty bounding box.
func (p *Path) Bounds() fixed.Rectangle52_12 {
	if len(p.points) == 0 {
		return fixed.Rectangle52_12{}
	}
	b := fixed.Rectangle52_12{Min: p.points[0], Max: p.points[0]}
	for _, pt := range p.points[1:] {
		b.Min.X = min(b.Min.X, pt.X)
		b.Min.Y = min(b.Min.Y, pt.Y)
		b.Max.X = max(b.Max.X, pt.X)
		b.Max.Y = max(b.Max.Y, pt.Y)
	}
	return b
}
