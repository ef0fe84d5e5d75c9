package region

// Region is a set of pixels represented as pairwise disjoint rectangles.
// The zero value is an empty region ready to use.
//
// Region is not safe for concurrent use; callers serialize access (the view
// tree does so under its tree lock).
type Region struct {
	rects []Rect
}

// Empty reports whether the region covers no pixels.
func (g *Region) Empty() bool {
	return len(g.rects) == 0
}

// Len returns the number of rectangles in the current tiling.
func (g *Region) Len() int {
	return len(g.rects)
}

// Rects returns a copy of the rectangles tiling the region.
func (g *Region) Rects() []Rect {
	if len(g.rects) == 0 {
		return nil
	}
	out := make([]Rect, len(g.rects))
	copy(out, g.rects)
	return out
}

// Each calls fn for every rectangle of the tiling.
func (g *Region) Each(fn func(Rect)) {
	for _, r := range g.rects {
		fn(r)
	}
}

// Area returns the number of pixels covered.
func (g *Region) Area() int {
	n := 0
	for _, r := range g.rects {
		n += r.Area()
	}
	return n
}

// Bounds returns the smallest rectangle containing the region.
func (g *Region) Bounds() Rect {
	var b Rect
	for _, r := range g.rects {
		b = b.Union(r)
	}
	return b
}

// Contains reports whether the pixel (x, y) is covered.
func (g *Region) Contains(x, y int) bool {
	for _, r := range g.rects {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Free empties the region, keeping the backing storage for reuse.
func (g *Region) Free() {
	g.rects = g.rects[:0]
}

// Clone returns an independent copy of the region.
func (g *Region) Clone() Region {
	return Region{rects: g.Rects()}
}

// Equal reports whether g and o cover exactly the same pixels,
// regardless of how either is tiled.
func (g *Region) Equal(o *Region) bool {
	if g.Area() != o.Area() {
		return false
	}
	diff := g.Clone()
	diff.RemoveRegion(o, 0, 0)
	return diff.Empty()
}

// PasteRect adds r to the region.
func (g *Region) PasteRect(r Rect) {
	if r.Empty() {
		return
	}
	for _, a := range g.rects {
		if r.In(a) {
			return
		}
	}
	g.RemoveRect(r)
	g.rects = append(g.rects, r)
	g.coalesce()
}

// PasteRegion adds src, translated by (dx, dy), to the region.
func (g *Region) PasteRegion(src *Region, dx, dy int) {
	if src == g {
		// Self-union is the identity, translated self-union is not; take a
		// snapshot so the iteration does not observe its own output.
		if dx == 0 && dy == 0 {
			return
		}
		snap := src.Clone()
		src = &snap
	}
	for _, r := range src.rects {
		g.PasteRect(r.Translate(dx, dy))
	}
}

// RemoveRect subtracts r from the region.
func (g *Region) RemoveRect(r Rect) {
	if r.Empty() || len(g.rects) == 0 {
		return
	}
	var out []Rect
	split := false
	for i, a := range g.rects {
		if !a.Overlaps(r) {
			if split {
				out = append(out, a)
			}
			continue
		}
		if !split {
			out = make([]Rect, 0, len(g.rects)+4)
			out = append(out, g.rects[:i]...)
			split = true
		}
		out = appendDifference(out, a, r)
	}
	if split {
		g.rects = out
	}
}

// RemoveRegion subtracts src, translated by (dx, dy), from the region.
func (g *Region) RemoveRegion(src *Region, dx, dy int) {
	if src == g {
		snap := src.Clone()
		src = &snap
	}
	for _, r := range src.rects {
		g.RemoveRect(r.Translate(dx, dy))
	}
}

// ClipRect intersects the region with r in place.
func (g *Region) ClipRect(r Rect) {
	out := g.rects[:0]
	for _, a := range g.rects {
		if c := a.Intersect(r); !c.Empty() {
			out = append(out, c)
		}
	}
	g.rects = out
}

// Translate shifts every rectangle by (dx, dy).
func (g *Region) Translate(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	for i := range g.rects {
		g.rects[i] = g.rects[i].Translate(dx, dy)
	}
}

// CopyRect pastes into dst the part of src inside clip, translated by
// (dx, dy). The clip is applied in src coordinates, before translation.
func CopyRect(dst, src *Region, dx, dy int, clip Rect) {
	if clip.Empty() {
		return
	}
	if dst == src {
		snap := src.Clone()
		src = &snap
	}
	for _, r := range src.rects {
		if c := r.Intersect(clip); !c.Empty() {
			dst.PasteRect(c.Translate(dx, dy))
		}
	}
}

// appendDifference appends the up to four pieces of a not covered by r.
func appendDifference(out []Rect, a, r Rect) []Rect {
	if r.Y0 > a.Y0 {
		out = append(out, Rect{X0: a.X0, Y0: a.Y0, X1: a.X1, Y1: r.Y0})
	}
	if r.Y1 < a.Y1 {
		out = append(out, Rect{X0: a.X0, Y0: r.Y1, X1: a.X1, Y1: a.Y1})
	}
	y0 := max(a.Y0, r.Y0)
	y1 := min(a.Y1, r.Y1)
	if r.X0 > a.X0 {
		out = append(out, Rect{X0: a.X0, Y0: y0, X1: r.X0, Y1: y1})
	}
	if r.X1 < a.X1 {
		out = append(out, Rect{X0: r.X1, Y0: y0, X1: a.X1, Y1: y1})
	}
	return out
}

// coalesce merges the last rectangle with neighbours sharing a full edge,
// repeating while merges happen. Keeps tilings from fragmenting when damage
// is pasted in adjacent strips.
func (g *Region) coalesce() {
	for {
		n := len(g.rects)
		if n < 2 {
			return
		}
		last := g.rects[n-1]
		merged := false
		for i := 0; i < n-1; i++ {
			a := g.rects[i]
			var m Rect
			switch {
			case a.Y0 == last.Y0 && a.Y1 == last.Y1 && (a.X1 == last.X0 || last.X1 == a.X0):
				m = Rect{X0: min(a.X0, last.X0), Y0: a.Y0, X1: max(a.X1, last.X1), Y1: a.Y1}
			case a.X0 == last.X0 && a.X1 == last.X1 && (a.Y1 == last.Y0 || last.Y1 == a.Y0):
				m = Rect{X0: a.X0, Y0: min(a.Y0, last.Y0), X1: a.X1, Y1: max(a.Y1, last.Y1)}
			default:
				continue
			}
			// Move the merged rect to the end so it can keep growing.
			g.rects[i] = g.rects[n-2]
			g.rects[n-2] = m
			g.rects = g.rects[:n-1]
			merged = true
			break
		}
		if !merged {
			return
		}
	}
}
