package region

import "fmt"

// Rect is a half-open axis-aligned rectangle covering [X0, X1) x [Y0, Y1).
// A Rect with X0 >= X1 or Y0 >= Y1 is empty.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// XYWH returns the rectangle with origin (x, y) and size w x h.
func XYWH(x, y, w, h int) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Dx returns the width of r, or 0 if r is empty.
func (r Rect) Dx() int {
	if r.Empty() {
		return 0
	}
	return r.X1 - r.X0
}

// Dy returns the height of r, or 0 if r is empty.
func (r Rect) Dy() int {
	if r.Empty() {
		return 0
	}
	return r.Y1 - r.Y0
}

// Area returns the number of pixels covered by r.
func (r Rect) Area() int {
	return r.Dx() * r.Dy()
}

// Intersect returns the largest rectangle contained in both r and s.
// The result may be empty.
func (r Rect) Intersect(s Rect) Rect {
	if r.X0 < s.X0 {
		r.X0 = s.X0
	}
	if r.Y0 < s.Y0 {
		r.Y0 = s.Y0
	}
	if r.X1 > s.X1 {
		r.X1 = s.X1
	}
	if r.Y1 > s.Y1 {
		r.Y1 = s.Y1
	}
	return r
}

// Overlaps reports whether r and s share at least one pixel.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Empty() && !s.Empty() &&
		r.X0 < s.X1 && s.X0 < r.X1 &&
		r.Y0 < s.Y1 && s.Y0 < r.Y1
}

// In reports whether every pixel of r is also in s.
// An empty r is in any rectangle.
func (r Rect) In(s Rect) bool {
	if r.Empty() {
		return true
	}
	return s.X0 <= r.X0 && r.X1 <= s.X1 &&
		s.Y0 <= r.Y0 && r.Y1 <= s.Y1
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Union returns the smallest rectangle containing both r and s.
// Empty operands are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return Rect{
		X0: min(r.X0, s.X0),
		Y0: min(r.Y0, s.Y0),
		X1: max(r.X1, s.X1),
		Y1: max(r.Y1, s.Y1),
	}
}

// Contains reports whether the pixel (x, y) is in r.
func (r Rect) Contains(x, y int) bool {
	return r.X0 <= x && x < r.X1 && r.Y0 <= y && y < r.Y1
}

// String returns a human-readable representation of r.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X0, r.Y0, r.X1, r.Y1)
}
