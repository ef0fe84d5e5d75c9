package text

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/gui/path"
)

// Metrics are the vertical metrics of a font, in whole pixels.
type Metrics struct {
	// Ascent is the distance from the top of the line box to the baseline.
	Ascent int
	// Descent is the distance from the baseline to the bottom of the glyphs.
	Descent int
	// Height is the recommended line height.
	Height int
}

// Extent is the size of a shaped line of text in pixels.
type Extent struct {
	W, H int
}

// Glyph is a shaped glyph positioned on a line. X and Y are the pen
// position with the glyph's offsets applied; Y grows up.
type Glyph struct {
	ID      font.GID
	Cluster int
	X, Y    fixed.Int26_6
	Advance fixed.Int26_6
}

// Font is a registered font opened at one pixel size.
// Font is safe for concurrent use.
type Font struct {
	name    string
	size    int
	src     *font.Font
	scale   float32 // pixels per font unit
	ascent  float32
	metrics Metrics
	tol     path.Fixed
}

// shaperPool pools HarfbuzzShaper instances, which are not safe for
// concurrent use.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

func newFont(name string, size int, src *font.Font) *Font {
	upem := float32(src.Upem())
	f := &Font{
		name:  name,
		size:  size,
		src:   src,
		scale: float32(size) / upem,
		tol:   path.One / 4,
	}
	ext, ok := font.NewFace(src).FontHExtents()
	if !ok {
		ext = font.FontExtents{Ascender: upem * 0.8, Descender: -upem * 0.2}
	}
	f.ascent = ext.Ascender * f.scale
	descent := -ext.Descender * f.scale
	f.metrics = Metrics{
		Ascent:  int(math.Ceil(float64(f.ascent))),
		Descent: int(math.Ceil(float64(descent))),
		Height:  int(math.Ceil(float64(f.ascent + descent + ext.LineGap*f.scale))),
	}
	return f
}

// Name returns the registered name of the font.
func (f *Font) Name() string { return f.name }

// Size returns the size in pixels per em.
func (f *Font) Size() int { return f.size }

// Metrics returns the font's vertical metrics.
func (f *Font) Metrics() Metrics { return f.metrics }

// Shape returns the glyphs of s laid out left to right from x = 0.
func (f *Font) Shape(s string) []Glyph {
	glyphs, _ := f.shape(font.NewFace(f.src), s)
	return glyphs
}

// Measure returns the extent of s without extracting outlines.
func (f *Font) Measure(s string) Extent {
	_, w := f.shape(font.NewFace(f.src), s)
	return Extent{W: w.Ceil(), H: f.metrics.Height}
}

// shape normalizes s and shapes it with face. It returns the glyphs and
// the final pen position.
func (f *Font) shape(face *font.Face, s string) ([]Glyph, fixed.Int26_6) {
	runes := []rune(norm.NFC.String(s))
	if len(runes) == 0 {
		return nil, 0
	}
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.I(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(in)
	shaperPool.Put(hb)

	glyphs := make([]Glyph, len(out.Glyphs))
	var pen fixed.Int26_6
	for i, g := range out.Glyphs {
		glyphs[i] = Glyph{
			ID:      g.GlyphID,
			Cluster: g.TextIndex(),
			X:       pen + g.XOffset,
			Y:       g.YOffset,
			Advance: g.Advance,
		}
		pen += g.Advance
	}
	return glyphs, pen
}

// Paths shapes s and returns its glyph outlines as closed polygons in
// pixels, with the line box's top-left corner at the origin, together
// with the extent of the line. Outlines use non-zero winding.
func (f *Font) Paths(s string) ([]*path.Path, Extent) {
	face := font.NewFace(f.src)
	glyphs, w := f.shape(face, s)
	var polys []*path.Path
	for _, g := range glyphs {
		out, ok := face.GlyphData(g.ID).(font.GlyphOutline)
		if !ok {
			continue
		}
		polys = f.appendOutline(polys, out, fixedToFloat(g.X), f.ascent-fixedToFloat(g.Y))
	}
	return polys, Extent{W: w.Ceil(), H: f.metrics.Height}
}

// Glyph returns the outline of r with its pen origin at x = 0, positioned
// as Paths would. It returns ErrNoOutline if the font has no vector
// outline for r.
func (f *Font) Glyph(r rune) ([]*path.Path, error) {
	face := font.NewFace(f.src)
	gid, ok := face.NominalGlyph(r)
	if !ok {
		return nil, fmt.Errorf("glyph %q: %w", r, ErrNoOutline)
	}
	out, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, fmt.Errorf("glyph %q: %w", r, ErrNoOutline)
	}
	return f.appendOutline(nil, out, 0, f.ascent), nil
}

// appendOutline flattens out, in font units with Y up, into polygons in
// pixels with Y down, placing the glyph origin at (ox, oy).
func (f *Font) appendOutline(polys []*path.Path, out font.GlyphOutline, ox, oy float32) []*path.Path {
	pt := func(p ot.SegmentPoint) path.Point {
		return path.Pt(float64(ox+p.X*f.scale), float64(oy-p.Y*f.scale))
	}
	cur := path.New(16)
	var last path.Point
	for _, seg := range out.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if cur.Len() >= 3 {
				polys = append(polys, cur)
			}
			cur = path.New(16)
			last = pt(seg.Args[0])
			cur.Push(last)
		case ot.SegmentOpLineTo:
			last = pt(seg.Args[0])
			cur.Push(last)
		case ot.SegmentOpQuadTo:
			p3 := pt(seg.Args[1])
			cur.Pop()
			cur.Quadratic(last, pt(seg.Args[0]), p3, f.tol)
			last = p3
		case ot.SegmentOpCubeTo:
			p4 := pt(seg.Args[2])
			cur.Pop()
			cur.Cubic(last, pt(seg.Args[0]), pt(seg.Args[1]), p4, f.tol)
			last = p4
		}
	}
	if cur.Len() >= 3 {
		polys = append(polys, cur)
	}
	return polys
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
