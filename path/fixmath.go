package path

import "math"

var (
	pi      = F(math.Pi)
	minSine = Fixed(1)
)

func toFloat(v Fixed) float64 { return float64(v) / float64(One) }

// Sqrt returns the square root of v, or 0 for negative v.
func Sqrt(v Fixed) Fixed {
	if v <= 0 {
		return 0
	}
	return F(math.Sqrt(toFloat(v)))
}

// Sin returns the sine of the angle a in radians.
func Sin(a Fixed) Fixed { return F(math.Sin(toFloat(a))) }

// Cos returns the cosine of the angle a in radians.
func Cos(a Fixed) Fixed { return F(math.Cos(toFloat(a))) }

// Acos returns the arc cosine of v in radians. v is clamped to [-1, 1].
func Acos(v Fixed) Fixed {
	return F(math.Acos(math.Max(-1, math.Min(1, toFloat(v)))))
}

func abs(v Fixed) Fixed {
	if v < 0 {
		return -v
	}
	return v
}

func mid(a, b Point) Point {
	return Point{X: (a.X + b.X) >> 1, Y: (a.Y + b.Y) >> 1}
}

func dot(a, b Point) Fixed {
	return a.X.Mul(b.X) + a.Y.Mul(b.Y)
}

func length(v Point) Fixed {
	return Sqrt(dot(v, v))
}

// perp returns v rotated a quarter turn: (-y, x).
func perp(v Point) Point {
	return Point{X: -v.Y, Y: v.X}
}

// norm returns v scaled to unit length, or the zero vector.
func norm(v Point) Point {
	l := length(v)
	if l == 0 {
		return Point{}
	}
	return v.Div(l)
}

func scale(v Point, k Fixed) Point {
	return Point{X: v.X.Mul(k), Y: v.Y.Mul(k)}
}

func rotate(v Point, angle Fixed) Point {
	s, c := Sin(angle), Cos(angle)
	return Point{
		X: v.X.Mul(c) - v.Y.Mul(s),
		Y: v.X.Mul(s) + v.Y.Mul(c),
	}
}
