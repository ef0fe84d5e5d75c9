// Package region provides rectangle-set algebra for damage and visibility
// tracking.
//
// A Region is a set of axis-aligned integer rectangles describing covered
// area in some local coordinate space. The compositor uses regions for view
// dirty areas (what must be redrawn) and opaque areas (what is guaranteed to
// be painted solid), so every operation is total: empty regions, empty
// rectangles and inverted rectangles are all accepted and simply contribute
// no area.
//
// # Representation
//
// Rectangles are half-open: Rect{X0, Y0, X1, Y1} covers the pixels x in
// [X0, X1) and y in [Y0, Y1). A Region keeps its rectangles pairwise
// disjoint, which makes Area exact and keeps subtraction cheap. Membership is
// the only observable property; two regions with the same coverage may tile
// it differently, use Equal to compare them.
//
// # Usage
//
//	var dirty region.Region
//	dirty.PasteRect(region.XYWH(0, 0, 100, 100))
//	dirty.RemoveRect(region.XYWH(25, 25, 50, 50)) // punch a hole
//	dirty.Translate(10, 10)
//	dirty.ClipRect(region.Rect{X0: 0, Y0: 0, X1: 64, Y1: 64})
package region
