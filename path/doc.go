// Package path builds polylines and polygons in 52.12 fixed-point
// coordinates and turns them into fillable outlines.
//
// A Path is an append-only sequence of points. Curves are added by
// flattening quadratic and cubic Bezier segments with iterative midpoint
// subdivision; zero-width polylines and polygons are turned into filled
// outlines by StrokeOpen and StrokeClosed.
//
// Example:
//
//	p := path.New(0)
//	p.Quadratic(path.IPt(0, 0), path.IPt(50, 100), path.IPt(100, 0), path.F(0.5))
//	outline, err := path.StrokeOpen(p, path.F(2), 8, path.JoinRound, path.CapRound, path.CapArrow)
package path
