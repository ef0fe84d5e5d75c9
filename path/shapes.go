package path

// Circle returns a closed polygon approximating the circle of the given
// radius around center with resolution segments. The first point is
// repeated at the end.
func Circle(center Point, radius Fixed, resolution int) *Path {
	resolution = max(3, resolution)
	p := New(resolution + 2)
	rv := Point{Y: radius}
	for i := 0; i <= resolution; i++ {
		angle := 2 * pi * Fixed(i) / Fixed(resolution)
		p.Push(center.Sub(rotate(rv, angle)))
	}
	return p.Push(p.points[0])
}

// Rect returns the closed polygon (x, y), (x+w, y), (x+w, y+h), (x, y+h).
func Rect(x, y, w, h Fixed) *Path {
	return FromPoints(
		Point{X: x, Y: y},
		Point{X: x + w, Y: y},
		Point{X: x + w, Y: y + h},
		Point{X: x, Y: y + h},
	)
}
