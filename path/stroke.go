package path

import "errors"

var (
	// ErrDegenerate is returned when stroking a path with fewer than 2 points.
	ErrDegenerate = errors.New("path: fewer than 2 points")

	// ErrBadStep is returned by StrokeClosed when step is not 1 or -1.
	ErrBadStep = errors.New("path: step must be 1 or -1")
)

// Cap is the shape drawn at an open end of a stroked polyline.
type Cap int

const (
	// CapButt ends the stroke flush with the end point.
	CapButt Cap = iota

	// CapSquare extends the stroke one radius beyond the end point.
	CapSquare

	// CapTriangle adds a point one radius beyond the end point.
	CapTriangle

	// CapArrow adds an arrow head twice the stroke width.
	CapArrow

	// CapRound adds a semicircle.
	CapRound
)

// Join is the shape drawn where two stroked segments meet.
type Join int

const (
	// JoinMitre extends the outer edges until they meet.
	JoinMitre Join = iota

	// JoinBevel connects the outer edges with a straight line.
	JoinBevel

	// JoinRound connects the outer edges with an arc.
	JoinRound
)

// String returns the cap name.
func (c Cap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapSquare:
		return "square"
	case CapTriangle:
		return "triangle"
	case CapArrow:
		return "arrow"
	case CapRound:
		return "round"
	default:
		return "unknown"
	}
}

// String returns the join name.
func (j Join) String() string {
	switch j {
	case JoinMitre:
		return "mitre"
	case JoinBevel:
		return "bevel"
	case JoinRound:
		return "round"
	default:
		return "unknown"
	}
}

// stroker accumulates outline points for one side of a stroke.
type stroker struct {
	out        *Path
	radius     Fixed
	resolution int
	join       Join
}

// cap emits the cap at p1 for a segment leaving p1 with unit left normal npv.
func (s *stroker) cap(style Cap, p1, npv Point) {
	rv := scale(npv, s.radius)
	switch style {
	case CapButt:
		s.out.Push(p1.Sub(rv), p1.Add(rv))
	case CapSquare:
		p0 := p1.Add(perp(rv))
		s.out.Push(p0.Sub(rv), p0.Add(rv))
	case CapTriangle:
		s.out.Push(p1.Sub(rv), p1.Add(perp(rv)), p1.Add(rv))
	case CapArrow:
		p0 := Point{X: rv.X * 2, Y: rv.Y * 2}
		s.out.Push(p1.Sub(p0), p1.Add(perp(p0)), p1.Add(p0))
	default:
		for i := 0; i <= s.resolution; i++ {
			angle := -pi * Fixed(i) / Fixed(s.resolution)
			s.out.Push(p1.Sub(rotate(rv, angle)))
		}
	}
}

// joinAt emits the join at p1 between the incoming edge l1v and the
// outgoing edge, given both unit left normals.
//
// When the normalized normal bisector does not point along the incoming
// edge (c <= 0) the mitre formula is used whatever the join style.
func (s *stroker) joinAt(p1, l1v, l1npv, l2npv Point) {
	nbv := norm(Point{X: (l1npv.X + l2npv.X) >> 1, Y: (l1npv.Y + l2npv.Y) >> 1})
	c := dot(nbv, norm(l1v))
	style := s.join
	if c <= 0 {
		style = JoinMitre
	}
	switch style {
	case JoinMitre:
		sin := Sin(Acos(c))
		if sin < minSine {
			sin = minSine
		}
		s.out.Push(p1.Add(scale(nbv, s.radius*One/sin)))
	case JoinBevel:
		s.out.Push(p1.Add(scale(l1npv, s.radius)), p1.Add(scale(l2npv, s.radius)))
	default:
		rv := scale(l1npv, s.radius)
		theta := -Acos(dot(l1npv, l2npv))
		segs := max(1, int(-theta*Fixed(s.resolution)/pi))
		for i := 0; i <= segs; i++ {
			angle := theta * Fixed(i) / Fixed(segs)
			s.out.Push(p1.Add(rotate(rv, angle)))
		}
	}
}

// StrokeOpen returns the closed outline of the polyline src widened to
// 2*radius. The outline starts with capStart at the first point, follows
// the left edge with joins, emits capEnd at the last point and returns
// along the other edge.
//
// resolution bounds the number of segments used for a half turn of a round
// cap or join; shorter arcs use proportionally fewer.
func StrokeOpen(src *Path, radius Fixed, resolution int, join Join, capStart, capEnd Cap) (*Path, error) {
	pts := src.points
	if len(pts) < 2 {
		return nil, ErrDegenerate
	}
	s := &stroker{
		out:        New(2*len(pts) + 2*resolution + 4),
		radius:     radius,
		resolution: max(1, resolution),
		join:       join,
	}
	s.side(pts, 0, 1, capStart)
	s.side(pts, len(pts)-1, -1, capEnd)
	return s.out, nil
}

// side walks pts from index start in direction step, emitting the cap at the
// start point and a join at every interior vertex.
func (s *stroker) side(pts []Point, start, step int, c Cap) {
	i := start
	p1 := pts[i]
	i += step
	p2 := pts[i]
	i += step
	l2v := p2.Sub(p1)
	l2npv := norm(perp(l2v))
	s.cap(c, p1, l2npv)
	for i >= 0 && i < len(pts) {
		p1 = p2
		l1v, l1npv := l2v, l2npv
		p2 = pts[i]
		i += step
		l2v = p2.Sub(p1)
		l2npv = norm(perp(l2v))
		s.joinAt(p1, l1v, l1npv, l2npv)
	}
}

// StrokeClosed returns one side of the outline of the closed polygon src,
// offset by radius. step 1 walks the points forward, step -1 backward; the
// two results together bound a stroked polygon. Neighbours wrap around, so
// every vertex gets a join and there are no caps.
func StrokeClosed(src *Path, step int, radius Fixed, resolution int, join Join) (*Path, error) {
	pts := src.points
	n := len(pts)
	if n < 2 {
		return nil, ErrDegenerate
	}
	if step != 1 && step != -1 {
		return nil, ErrBadStep
	}
	s := &stroker{
		out:        New(2 * n),
		radius:     radius,
		resolution: max(1, resolution),
		join:       join,
	}
	i := 0
	if step < 0 {
		i = n - 1
	}
	p1 := pts[(n+i-2*step)%n]
	p2 := pts[(n+i-step)%n]
	l2v := p2.Sub(p1)
	l2npv := norm(perp(l2v))
	for i >= 0 && i < n {
		p1 = p2
		l1v, l1npv := l2v, l2npv
		p2 = pts[i]
		i += step
		l2v = p2.Sub(p1)
		l2npv = norm(perp(l2v))
		s.joinAt(p1, l1v, l1npv, l2npv)
	}
	return s.out, nil
}

// StrokePolygon strokes the closed polygon src on both sides and returns the
// two outlines. Filled together with the non-zero winding rule they cover a
// band of width 2*radius around the polygon edges.
func StrokePolygon(src *Path, radius Fixed, resolution int, join Join) (fwd, back *Path, err error) {
	if fwd, err = StrokeClosed(src, 1, radius, resolution, join); err != nil {
		return nil, nil, err
	}
	if back, err = StrokeClosed(src, -1, radius, resolution, join); err != nil {
		return nil, nil, err
	}
	return fwd, back, nil
}
