package gui

import (
	"image"
	"math"

	"github.com/gogpu/gpucontext"
	"golang.org/x/image/vector"

	"github.com/gogpu/gui/path"
	"github.com/gogpu/gui/region"
)

// Ctx is the drawing context passed to a view's Draw hook. Coordinates
// are relative to the view; every primitive is clipped to the damage the
// view was handed for this frame.
type Ctx struct {
	dst      *Pixmap
	x, y     int
	clip     *region.Region
	color    uint32 // premultiplied
	textures gpucontext.TextureCreator

	raster *vector.Rasterizer
	mask   *image.Alpha
}

var _ gpucontext.TextureDrawer = (*Ctx)(nil)

// NewCtx returns a context drawing into dst with origin (x, y), clipped to
// clip, both in dst coordinates. tc is reported by TextureCreator.
func NewCtx(dst *Pixmap, x, y int, clip *region.Region, tc gpucontext.TextureCreator) *Ctx {
	return &Ctx{dst: dst, x: x, y: y, clip: clip, textures: tc}
}

// Origin returns the view's absolute origin.
func (c *Ctx) Origin() (x, y int) { return c.x, c.y }

// SetColor sets the straight-alpha 0xAARRGGBB color used by later
// primitives.
func (c *Ctx) SetColor(argb uint32) *Ctx {
	c.color = ToPremul(argb)
	return c
}

// FilledBox fills the rectangle (x, y, w, h).
func (c *Ctx) FilledBox(x, y, w, h int) *Ctx {
	r := region.XYWH(c.x+x, c.y+y, w, h).Intersect(region.XYWH(0, 0, c.dst.width, c.dst.height))
	if r.Empty() {
		return c
	}
	col := c.color
	c.clip.Each(func(cr region.Rect) {
		cr = cr.Intersect(r)
		for py := cr.Y0; py < cr.Y1; py++ {
			row := c.dst.data[py*c.dst.width:]
			for px := cr.X0; px < cr.X1; px++ {
				row[px] = over(row[px], col)
			}
		}
	})
	return c
}

// Box outlines the rectangle (x, y, w, h) with a one pixel line.
func (c *Ctx) Box(x, y, w, h int) *Ctx {
	if w <= 0 || h <= 0 {
		return c
	}
	c.FilledBox(x, y, w, 1)
	if h > 1 {
		c.FilledBox(x, y+h-1, w, 1)
	}
	if h > 2 {
		c.FilledBox(x, y+1, 1, h-2)
		if w > 1 {
			c.FilledBox(x+w-1, y+1, 1, h-2)
		}
	}
	return c
}

// Panel draws a bevelled panel. A positive depth is raised, a negative
// depth sunken; filled paints the interior with col.
func (c *Ctx) Panel(col uint32, filled bool, depth, x, y, w, h int) *Ctx {
	hi, lo := Brighter(col), Darker(col)
	d := depth
	if d < 0 {
		d = -d
		hi, lo = lo, hi
	}
	for i := 0; i < d && 2*i < w && 2*i < h; i++ {
		c.SetColor(hi)
		c.FilledBox(x+i, y+i, w-2*i, 1)
		c.FilledBox(x+i, y+i+1, 1, h-2*i-1)
		c.SetColor(lo)
		c.FilledBox(x+i+1, y+h-1-i, w-2*i-1, 1)
		c.FilledBox(x+w-1-i, y+i+1, 1, h-2*i-2)
	}
	if filled {
		c.SetColor(col).FilledBox(x+d, y+d, w-2*d, h-2*d)
	}
	return c
}

// Darker returns col with each color channel halved.
func Darker(col uint32) uint32 {
	return col&0xff000000 | (col&0x00fefefe)>>1
}

// Brighter returns col with each color channel moved half way to white.
func Brighter(col uint32) uint32 {
	return col&0xff000000 | ((col&0x00fefefe)>>1 + 0x00808080)
}

// FillPath fills the polygons polys, offset by (x, y), with the current
// color. Overlapping polygons of opposite winding cancel, so glyph
// counters and the two sides of a stroked polygon fill correctly.
func (c *Ctx) FillPath(x, y int, polys ...*path.Path) *Ctx {
	area := image.Rectangle{}
	for _, p := range polys {
		if p.Len() < 3 {
			continue
		}
		b := p.Bounds()
		area = area.Union(image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil()))
	}
	area = area.Add(image.Pt(c.x+x, c.y+y))
	cb := c.clip.Bounds()
	area = area.Intersect(image.Rect(cb.X0, cb.Y0, cb.X1, cb.Y1)).Intersect(c.dst.Bounds())
	if area.Empty() {
		return c
	}

	w, h := area.Dx(), area.Dy()
	if c.raster == nil {
		c.raster = vector.NewRasterizer(w, h)
	} else {
		c.raster.Reset(w, h)
	}
	if c.mask == nil || c.mask.Rect.Dx() < w || c.mask.Rect.Dy() < h {
		c.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		clear(c.mask.Pix)
	}
	ox := float32(c.x + x - area.Min.X)
	oy := float32(c.y + y - area.Min.Y)
	for _, p := range polys {
		if p.Len() < 3 {
			continue
		}
		pts := p.Points()
		c.raster.MoveTo(toF32(pts[0].X)+ox, toF32(pts[0].Y)+oy)
		for _, pt := range pts[1:] {
			c.raster.LineTo(toF32(pt.X)+ox, toF32(pt.Y)+oy)
		}
		c.raster.ClosePath()
	}
	c.raster.Draw(c.mask, image.Rect(0, 0, w, h), image.Opaque, image.Point{})

	col := c.color
	c.clip.Each(func(cr region.Rect) {
		cr = cr.Intersect(region.Rect{X0: area.Min.X, Y0: area.Min.Y, X1: area.Max.X, Y1: area.Max.Y})
		for py := cr.Y0; py < cr.Y1; py++ {
			row := c.dst.data[py*c.dst.width:]
			mrow := c.mask.Pix[(py-area.Min.Y)*c.mask.Stride:]
			for px := cr.X0; px < cr.X1; px++ {
				cov := uint32(mrow[px-area.Min.X])
				if cov == 0 {
					continue
				}
				row[px] = over(row[px], scale(col, cov+cov>>7))
			}
		}
	})
	return c
}

func toF32(v path.Fixed) float32 { return float32(v) / float32(path.One) }

// DrawPixmap composites src with its top-left corner at (x, y).
func (c *Ctx) DrawPixmap(src *Pixmap, x, y int) *Ctx {
	c.blit(x, y, src.width, src.height, func(sx, sy int) uint32 {
		return src.data[sy*src.width+sx]
	})
	return c
}

// DrawTexture implements gpucontext.TextureDrawer for textures created by
// SoftwareTextures.
func (c *Ctx) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	st, ok := tex.(*SoftTexture)
	if !ok || st.destroyed {
		return ErrUnsupportedTexture
	}
	ix, iy := int(math.Round(float64(x))), int(math.Round(float64(y)))
	c.blit(ix, iy, st.width, st.height, func(sx, sy int) uint32 {
		i := (sy*st.width + sx) * 4
		p := st.pix[i : i+4]
		return uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
	})
	return nil
}

// TextureCreator implements gpucontext.TextureDrawer.
func (c *Ctx) TextureCreator() gpucontext.TextureCreator { return c.textures }

func (c *Ctx) blit(x, y, w, h int, src func(sx, sy int) uint32) {
	ax, ay := c.x+x, c.y+y
	r := region.XYWH(ax, ay, w, h).Intersect(region.XYWH(0, 0, c.dst.width, c.dst.height))
	if r.Empty() {
		return
	}
	c.clip.Each(func(cr region.Rect) {
		cr = cr.Intersect(r)
		for py := cr.Y0; py < cr.Y1; py++ {
			row := c.dst.data[py*c.dst.width:]
			for px := cr.X0; px < cr.X1; px++ {
				row[px] = over(row[px], src(px-ax, py-ay))
			}
		}
	})
}

// over composites the premultiplied src over dst:
// dst*(1-src.A) + src.
func over(dst, src uint32) uint32 {
	sa := src >> 24
	if sa == 0xff {
		return src
	}
	return src + scale(dst, 256-(sa+sa>>7))
}

// scale multiplies every channel of c by m/256.
func scale(c, m uint32) uint32 {
	rb := ((c & 0x00ff00ff) * m >> 8) & 0x00ff00ff
	ag := (((c >> 8) & 0x00ff00ff) * m) & 0xff00ff00
	return ag | rb
}
