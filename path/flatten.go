package path

// maxDepth bounds subdivision. Midpoints are truncated, so a curve whose
// control points differ by a single unit can split into a half identical
// to itself and would never become flat under a zero tolerance.
const maxDepth = 16

type quadSeg struct {
	p1, p2, p3 Point
	depth      int
}

type cubicSeg struct {
	p1, p2, p3, p4 Point
	depth          int
}

// Quadratic appends the quadratic Bezier p1, p2, p3 flattened to within
// tol. The flatness of a segment is |p1 + p3 - 2*p2| summed over both axes.
//
// p1 and p3 are emitted exactly once; between them each flat sub-segment
// contributes its end point. A curve that is already flat emits only its
// end points.
func (p *Path) Quadratic(p1, p2, p3 Point, tol Fixed) *Path {
	p.Push(p1)
	stack := make([]quadSeg, 1, 2*maxDepth)
	stack[0] = quadSeg{p1, p2, p3, 0}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		flat := abs(s.p1.X+s.p3.X-s.p2.X-s.p2.X)+
			abs(s.p1.Y+s.p3.Y-s.p2.Y-s.p2.Y) <= tol
		if flat || s.depth == maxDepth {
			if len(stack) > 0 {
				p.Push(s.p3)
			}
			continue
		}

		p12 := mid(s.p1, s.p2)
		p23 := mid(s.p2, s.p3)
		p123 := mid(p12, p23)

		// Far half first so the near half is processed next.
		stack = append(stack,
			quadSeg{p123, p23, s.p3, s.depth + 1},
			quadSeg{s.p1, p12, p123, s.depth + 1})
	}
	return p.Push(p3)
}

// Cubic appends the cubic Bezier p1, p2, p3, p4 flattened to within tol.
// The flatness of a segment is |p1 + p3 - 2*p2| + |p2 + p4 - 2*p3| summed
// over both axes. End points are emitted as for Quadratic.
func (p *Path) Cubic(p1, p2, p3, p4 Point, tol Fixed) *Path {
	p.Push(p1)
	stack := make([]cubicSeg, 1, 2*maxDepth)
	stack[0] = cubicSeg{p1, p2, p3, p4, 0}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		flat := abs(s.p1.X+s.p3.X-s.p2.X-s.p2.X)+
			abs(s.p1.Y+s.p3.Y-s.p2.Y-s.p2.Y)+
			abs(s.p2.X+s.p4.X-s.p3.X-s.p3.X)+
			abs(s.p2.Y+s.p4.Y-s.p3.Y-s.p3.Y) <= tol
		if flat || s.depth == maxDepth {
			if len(stack) > 0 {
				p.Push(s.p4)
			}
			continue
		}

		p12 := mid(s.p1, s.p2)
		p23 := mid(s.p2, s.p3)
		p34 := mid(s.p3, s.p4)
		p123 := mid(p12, p23)
		p234 := mid(p23, p34)
		p1234 := mid(p123, p234)

		stack = append(stack,
			cubicSeg{p1234, p234, p34, s.p4, s.depth + 1},
			cubicSeg{s.p1, p12, p123, p1234, s.depth + 1})
	}
	return p.Push(p4)
}
