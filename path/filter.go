package path

// near reports whether a and b are within tol in Manhattan distance.
func near(a, b Point, tol Fixed) bool {
	return abs(a.X-b.X)+abs(a.Y-b.Y) <= tol
}

// FilterPolyline removes points closer than tol to the previously kept
// point. The first and last points are always kept.
func (p *Path) FilterPolyline(tol Fixed) *Path {
	n := len(p.points)
	if n < 3 {
		return p
	}
	last := p.points[n-1]
	out := p.points[:1]
	for _, pt := range p.points[1 : n-1] {
		if !near(pt, out[len(out)-1], tol) {
			out = append(out, pt)
		}
	}
	// Replace rather than duplicate a kept point sitting on the end.
	if len(out) > 1 && near(out[len(out)-1], last, tol) {
		out = out[:len(out)-1]
	}
	p.points = append(out, last)
	return p
}

// FilterPolygon is FilterPolyline for a closed polygon: it also drops
// trailing points that coincide with the first point within tol.
func (p *Path) FilterPolygon(tol Fixed) *Path {
	p.FilterPolyline(tol)
	for len(p.points) > 1 && near(p.points[len(p.points)-1], p.points[0], tol) {
		p.points = p.points[:len(p.points)-1]
	}
	return p
}
