package region

import (
	"math/rand/v2"
	"testing"
)

const gridSize = 64

// coverage is a reference bitmap used to check region results pixel by pixel.
type coverage [gridSize][gridSize]bool

func (c *coverage) paint(r Rect, v bool) {
	r = r.Intersect(Rect{X1: gridSize, Y1: gridSize})
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			c[y][x] = v
		}
	}
}

func (c *coverage) area() int {
	n := 0
	for y := range c {
		for x := range c[y] {
			if c[y][x] {
				n++
			}
		}
	}
	return n
}

func randRect(rng *rand.Rand) Rect {
	x := rng.IntN(gridSize - 1)
	y := rng.IntN(gridSize - 1)
	return XYWH(x, y, 1+rng.IntN(gridSize-x), 1+rng.IntN(gridSize-y))
}

// checkRegion fails the test if g is not a disjoint tiling matching want.
func checkRegion(t *testing.T, g *Region, want *coverage) {
	t.Helper()
	rects := g.Rects()
	for i, a := range rects {
		if a.Empty() {
			t.Fatalf("rect %d is empty: %v", i, a)
		}
		for j := i + 1; j < len(rects); j++ {
			if a.Overlaps(rects[j]) {
				t.Fatalf("rects %v and %v overlap", a, rects[j])
			}
		}
	}
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			if got := g.Contains(x, y); got != want[y][x] {
				t.Fatalf("Contains(%d, %d) = %v, want %v", x, y, got, want[y][x])
			}
		}
	}
	if g.Area() != want.area() {
		t.Fatalf("Area() = %d, want %d", g.Area(), want.area())
	}
}

func TestRectBasics(t *testing.T) {
	r := XYWH(10, 20, 30, 40)
	if r.Dx() != 30 || r.Dy() != 40 || r.Area() != 1200 {
		t.Errorf("XYWH(10,20,30,40) size = %dx%d area %d", r.Dx(), r.Dy(), r.Area())
	}
	if !(Rect{X0: 5, Y0: 5, X1: 5, Y1: 10}).Empty() {
		t.Error("zero-width rect should be empty")
	}
	if got := r.Intersect(XYWH(35, 55, 100, 100)); got != (Rect{X0: 35, Y0: 55, X1: 40, Y1: 60}) {
		t.Errorf("Intersect = %v", got)
	}
	if XYWH(0, 0, 10, 10).Overlaps(XYWH(10, 0, 10, 10)) {
		t.Error("edge-adjacent rects must not overlap")
	}
	if got := r.String(); got != "(10,20)-(40,60)" {
		t.Errorf("String() = %q", got)
	}
}

func TestPasteRemoveProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 200; iter++ {
		var g Region
		var want coverage
		for op := 0; op < 12; op++ {
			r := randRect(rng)
			if rng.IntN(3) == 0 {
				g.RemoveRect(r)
				want.paint(r, false)
			} else {
				g.PasteRect(r)
				want.paint(r, true)
			}
		}
		checkRegion(t, &g, &want)
	}
}

func TestPasteOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for iter := 0; iter < 50; iter++ {
		rects := make([]Rect, 6)
		for i := range rects {
			rects[i] = randRect(rng)
		}
		var a, b Region
		for i := range rects {
			a.PasteRect(rects[i])
			b.PasteRect(rects[len(rects)-1-i])
		}
		if !a.Equal(&b) {
			t.Fatalf("union depends on paste order: %v vs %v", a.Rects(), b.Rects())
		}
	}
}

func TestPasteContainedIsNoop(t *testing.T) {
	var g Region
	g.PasteRect(XYWH(0, 0, 100, 100))
	g.PasteRect(XYWH(10, 10, 5, 5))
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestPasteAdjacentCoalesces(t *testing.T) {
	var g Region
	for x := 0; x < 10; x++ {
		g.PasteRect(XYWH(x*10, 0, 10, 10))
	}
	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after pasting adjacent strips", g.Len())
	}
	if got := g.Bounds(); got != XYWH(0, 0, 100, 10) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestRemoveHole(t *testing.T) {
	var g Region
	g.PasteRect(XYWH(0, 0, 30, 30))
	g.RemoveRect(XYWH(10, 10, 10, 10))
	if g.Area() != 900-100 {
		t.Errorf("Area() = %d, want 800", g.Area())
	}
	if g.Contains(15, 15) {
		t.Error("hole should not be covered")
	}
	if g.Len() != 4 {
		t.Errorf("Len() = %d, want 4 pieces", g.Len())
	}
}

func TestRemoveDisjointKeepsTiling(t *testing.T) {
	var g Region
	g.PasteRect(XYWH(0, 0, 10, 10))
	before := g.Rects()
	g.RemoveRect(XYWH(50, 50, 10, 10))
	after := g.Rects()
	if len(before) != len(after) || before[0] != after[0] {
		t.Errorf("disjoint remove changed region: %v -> %v", before, after)
	}
}

func TestClipRectIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for iter := 0; iter < 50; iter++ {
		var g Region
		var want coverage
		for i := 0; i < 5; i++ {
			r := randRect(rng)
			g.PasteRect(r)
			want.paint(r, true)
		}
		clip := randRect(rng)
		g.ClipRect(clip)
		once := g.Clone()
		g.ClipRect(clip)
		if !g.Equal(&once) {
			t.Fatalf("ClipRect not idempotent")
		}
		var mask coverage
		mask.paint(clip, true)
		for y := range want {
			for x := range want[y] {
				want[y][x] = want[y][x] && mask[y][x]
			}
		}
		checkRegion(t, &g, &want)
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	var g Region
	g.PasteRect(XYWH(1, 2, 3, 4))
	g.PasteRect(XYWH(10, 10, 5, 5))
	orig := g.Clone()
	g.Translate(7, -3)
	if g.Contains(1, 2) || !g.Contains(8, -1) {
		t.Error("Translate did not move the region")
	}
	g.Translate(-7, 3)
	if !g.Equal(&orig) {
		t.Errorf("translate round trip = %v, want %v", g.Rects(), orig.Rects())
	}
}

func TestCopyRect(t *testing.T) {
	var src, dst Region
	src.PasteRect(XYWH(0, 0, 100, 100))
	CopyRect(&dst, &src, 5, 5, XYWH(90, 90, 50, 50))
	if got := dst.Rects(); len(got) != 1 || got[0] != XYWH(95, 95, 10, 10) {
		t.Errorf("CopyRect = %v, want [(95,95)-(105,105)]", got)
	}
	if src.Area() != 10000 {
		t.Errorf("source modified: area %d", src.Area())
	}
}

func TestPasteRegionSelf(t *testing.T) {
	var g Region
	g.PasteRect(XYWH(0, 0, 10, 10))
	g.PasteRegion(&g, 0, 0)
	if g.Area() != 100 {
		t.Errorf("self paste area = %d, want 100", g.Area())
	}
	g.PasteRegion(&g, 10, 0)
	if g.Area() != 200 {
		t.Errorf("translated self paste area = %d, want 200", g.Area())
	}
	g.RemoveRegion(&g, 0, 0)
	if !g.Empty() {
		t.Errorf("self remove left %v", g.Rects())
	}
}

func TestFreeReuses(t *testing.T) {
	var g Region
	g.PasteRect(XYWH(0, 0, 10, 10))
	g.Free()
	if !g.Empty() || g.Area() != 0 {
		t.Error("Free did not empty region")
	}
	g.PasteRect(XYWH(0, 0, 1, 1))
	if g.Area() != 1 {
		t.Errorf("Area() after reuse = %d", g.Area())
	}
}

func BenchmarkPasteRemove(b *testing.B) {
	rng := rand.New(rand.NewPCG(7, 8))
	rects := make([]Rect, 256)
	for i := range rects {
		rects[i] = randRect(rng)
	}
	b.ReportAllocs()
	var g Region
	i := 0
	for b.Loop() {
		r := rects[i%len(rects)]
		if i%3 == 0 {
			g.RemoveRect(r)
		} else {
			g.PasteRect(r)
		}
		i++
	}
}
