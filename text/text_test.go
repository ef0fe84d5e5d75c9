package text

import (
	"errors"
	"slices"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/gui/path"
)

func openDefault(t *testing.T, size int) *Font {
	t.Helper()
	f, err := Open(Default, size)
	if err != nil {
		t.Fatalf("Open(%q, %d) = %v", Default, size, err)
	}
	return f
}

func TestOpenCached(t *testing.T) {
	a := openDefault(t, 16)
	b := openDefault(t, 16)
	if a != b {
		t.Error("Open returned a different *Font for the same key")
	}
	if c := openDefault(t, 17); c == a {
		t.Error("Open returned the same *Font for a different size")
	}
	if a.Name() != Default || a.Size() != 16 {
		t.Errorf("Name, Size = %q, %d", a.Name(), a.Size())
	}
}

func TestOpenCacheBounded(t *testing.T) {
	if err := Register("bounded", goregular.TTF); err != nil {
		t.Fatalf("Register() = %v", err)
	}
	open := func(size int) *Font {
		f, err := Open("bounded", size)
		if err != nil {
			t.Fatalf("Open(bounded, %d) = %v", size, err)
		}
		return f
	}
	first := open(1)
	var last *Font
	for size := 2; size <= MaxOpenFonts+1; size++ {
		last = open(size)
	}
	if n := registry.fonts.Len(); n > MaxOpenFonts {
		t.Errorf("cache holds %d fonts, want at most %d", n, MaxOpenFonts)
	}
	if open(MaxOpenFonts+1) != last {
		t.Error("recently opened font was evicted")
	}
	if open(1) == first {
		t.Error("least recently opened font was not evicted")
	}

	before := open(2)
	if err := Register("bounded", goregular.TTF); err != nil {
		t.Fatalf("Register() again = %v", err)
	}
	if open(2) == before {
		t.Error("Register kept fonts opened from the old data")
	}
}

func TestOpenErrors(t *testing.T) {
	if _, err := Open("no-such-font", 12); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("Open(unknown) = %v, want ErrUnknownFont", err)
	}
	if _, err := Open(Default, 0); !errors.Is(err, ErrBadSize) {
		t.Errorf("Open(size 0) = %v, want ErrBadSize", err)
	}
}

func TestRegister(t *testing.T) {
	if err := Register("empty", nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("Register(nil) = %v, want ErrEmptyFontData", err)
	}
	if err := Register("junk", []byte("not a font")); err == nil {
		t.Error("Register(junk) succeeded")
	}
	if err := Register("mono-alias", goregular.TTF); err != nil {
		t.Fatalf("Register() = %v", err)
	}
	names := Names()
	if !slices.Contains(names, "mono-alias") || !slices.Contains(names, Default) {
		t.Errorf("Names() = %v", names)
	}
	if slices.Contains(names, "junk") {
		t.Error("failed Register left a name behind")
	}
	if _, err := Open("mono-alias", 10); err != nil {
		t.Errorf("Open(registered) = %v", err)
	}
}

func TestMetrics(t *testing.T) {
	m := openDefault(t, 20).Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics = %+v, want positive ascent and descent", m)
	}
	if m.Height < m.Ascent+m.Descent-1 {
		t.Errorf("Height %d shorter than ascent+descent %d", m.Height, m.Ascent+m.Descent)
	}
	if m.Ascent > 20 {
		t.Errorf("Ascent %d exceeds the em size", m.Ascent)
	}
}

func TestPathsInsideExtent(t *testing.T) {
	f := openDefault(t, 24)
	polys, ext := f.Paths("Hello")
	if len(polys) == 0 {
		t.Fatal("Paths returned no polygons")
	}
	if ext.W <= 0 || ext.H != f.Metrics().Height {
		t.Errorf("extent = %+v, want positive width and height %d", ext, f.Metrics().Height)
	}
	for i, p := range polys {
		if p.Len() < 3 {
			t.Errorf("polygon %d has %d points", i, p.Len())
		}
		b := p.Bounds()
		if b.Min.X < -path.One || b.Min.Y < -path.One ||
			b.Max.X > path.Fixed(ext.W+1)*path.One || b.Max.Y > path.Fixed(ext.H+1)*path.One {
			t.Errorf("polygon %d bounds %v outside extent %+v", i, b, ext)
		}
	}
	if m := f.Measure("Hello"); m != ext {
		t.Errorf("Measure = %+v, want %+v", m, ext)
	}
}

func TestPathsEmpty(t *testing.T) {
	polys, ext := openDefault(t, 12).Paths("")
	if polys != nil || ext.W != 0 {
		t.Errorf("Paths(\"\") = %d polys, width %d", len(polys), ext.W)
	}
}

func TestGlyph(t *testing.T) {
	f := openDefault(t, 32)
	polys, err := f.Glyph('o')
	if err != nil {
		t.Fatalf("Glyph('o') = %v", err)
	}
	if len(polys) != 2 {
		t.Errorf("Glyph('o') has %d contours, want 2", len(polys))
	}
	if _, err := f.Glyph(0x10FFFD); !errors.Is(err, ErrNoOutline) {
		t.Errorf("Glyph(private use) = %v, want ErrNoOutline", err)
	}
	space, err := f.Glyph(' ')
	if err != nil || len(space) != 0 {
		t.Errorf("Glyph(' ') = %d polys, %v; want none", len(space), err)
	}
}

func TestShapeAdvances(t *testing.T) {
	glyphs := openDefault(t, 16).Shape("AVA")
	if len(glyphs) != 3 {
		t.Fatalf("len(Shape) = %d, want 3", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d at %v not right of %v", i, glyphs[i].X, glyphs[i-1].X)
		}
	}
}

func TestShapeNormalizes(t *testing.T) {
	f := openDefault(t, 16)
	composed := f.Shape("\u00e9")
	decomposed := f.Shape("e\u0301")
	if len(composed) != len(decomposed) {
		t.Fatalf("composed %d glyphs, decomposed %d", len(composed), len(decomposed))
	}
	for i := range composed {
		if composed[i].ID != decomposed[i].ID {
			t.Errorf("glyph %d: %d vs %d", i, composed[i].ID, decomposed[i].ID)
		}
	}
}

func TestPathsConcurrent(t *testing.T) {
	f := openDefault(t, 14)
	want, _ := f.Paths("concurrent")
	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			got, _ := f.Paths("concurrent")
			if len(got) != len(want) {
				return errors.New("polygon count differs")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Error(err)
	}
}

func BenchmarkPaths(b *testing.B) {
	f, err := Open(Default, 16)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		f.Paths("The quick brown fox")
	}
}
