package gui

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/gui/internal/rows"
)

// parallelPixels is the buffer size at which per-pixel passes are split
// into row bands on the shared pool.
const parallelPixels = 256 * 256

// Pixmap is a rectangular buffer of premultiplied-alpha pixels stored as
// 0xAARRGGBB.
type Pixmap struct {
	width  int
	height int
	data   []uint32

	// tex is the last texture uploaded from this pixmap.
	tex *Texture
}

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint32, width*height),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the pixels, row by row.
func (p *Pixmap) Data() []uint32 {
	return p.data
}

// ToPremul converts a straight 0xAARRGGBB color to premultiplied alpha.
// Alpha 255 and 0 are exact.
func ToPremul(c uint32) uint32 {
	a := c >> 24
	m := a + 1
	rb := ((c & 0x00ff00ff) * m >> 8) & 0x00ff00ff
	g := ((c & 0x0000ff00) * m >> 8) & 0x0000ff00
	return a<<24 | rb | g
}

// ToARGB converts a premultiplied 0xAARRGGBB color back to straight alpha.
// Colors with alpha 0 or 255 are returned unchanged; a fully transparent
// pixel has no recoverable color.
func ToARGB(c uint32) uint32 {
	a := c >> 24
	if a == 0 || a == 0xff {
		return c
	}
	d := (0xff << 16) / a
	r := min(0xff, ((c>>16)&0xff)*d>>16)
	g := min(0xff, ((c>>8)&0xff)*d>>16)
	b := min(0xff, (c&0xff)*d>>16)
	return a<<24 | r<<16 | g<<8 | b
}

// Fill sets every pixel to the straight-alpha color c.
func (p *Pixmap) Fill(c uint32) *Pixmap {
	pc := ToPremul(c)
	p.bands(p.width*p.height, func(y0, y1 int) {
		line := p.data[y0*p.width : y1*p.width]
		for i := range line {
			line[i] = pc
		}
	})
	return p
}

// AsARGB converts the whole buffer from premultiplied to straight alpha.
func (p *Pixmap) AsARGB() *Pixmap {
	p.convert(ToARGB)
	return p
}

// AsPremul converts the whole buffer from straight to premultiplied alpha.
func (p *Pixmap) AsPremul() *Pixmap {
	p.convert(ToPremul)
	return p
}

// bands runs fn over row ranges of p, split across the shared pool when
// the pass touches at least parallelPixels pixels.
func (p *Pixmap) bands(pixels int, fn func(y0, y1 int)) {
	if pixels < parallelPixels {
		fn(0, p.height)
		return
	}
	rows.Shared().Bands(p.height, 16, fn)
}

// convert maps every pixel through fn, reusing the last result across runs
// of identical pixels.
func (p *Pixmap) convert(fn func(uint32) uint32) {
	p.bands(p.width*p.height, func(y0, y1 int) {
		in, out := uint32(0), fn(0)
		line := p.data[y0*p.width : y1*p.width]
		for i, c := range line {
			if c != in {
				in, out = c, fn(c)
			}
			line[i] = out
		}
	})
}

// ResizeHalf fills p with a 2x box downsample of src. It only handles an
// exact half: if src is not twice p's size in both dimensions, p is left
// unchanged and false is returned.
func (p *Pixmap) ResizeHalf(src *Pixmap) bool {
	if p.width*2 != src.width || p.height*2 != src.height {
		return false
	}
	p.bands(src.width*src.height, func(y0, y1 int) {
		p.halve(src, y0, y1)
	})
	return true
}

func (p *Pixmap) halve(src *Pixmap, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row0 := src.data[2*y*src.width:]
		row1 := src.data[(2*y+1)*src.width:]
		out := p.data[y*p.width:]
		for x := 0; x < p.width; x++ {
			p0, p1 := row0[2*x], row0[2*x+1]
			p2, p3 := row1[2*x], row1[2*x+1]
			ag := (p0>>8)&0x00ff00ff + (p1>>8)&0x00ff00ff +
				(p2>>8)&0x00ff00ff + (p3>>8)&0x00ff00ff
			rb := p0&0x00ff00ff + p1&0x00ff00ff +
				p2&0x00ff00ff + p3&0x00ff00ff
			out[x] = ((ag>>2)&0x00ff00ff)<<8 | (rb>>2)&0x00ff00ff
		}
	}
}

// Pixel returns the premultiplied pixel at (x, y), or 0 outside the pixmap.
func (p *Pixmap) Pixel(x, y int) uint32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[y*p.width+x]
}

// SetPixel stores the premultiplied pixel c at (x, y).
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c uint32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[y*p.width+x] = c
}

// RGBA returns the pixels inside r as densely packed premultiplied RGBA
// bytes, the layout texture uploads expect.
func (p *Pixmap) RGBA(r image.Rectangle) []byte {
	r = r.Intersect(p.Bounds())
	out := make([]byte, 0, r.Dx()*r.Dy()*4)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for _, c := range p.data[y*p.width+r.Min.X : y*p.width+r.Max.X] {
			out = append(out, byte(c>>16), byte(c>>8), byte(c), byte(c>>24))
		}
	}
	return out
}

// ToImage converts the pixmap to an image.RGBA, which is also premultiplied.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.RGBA(p.Bounds()))
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			pm.data[y*pm.width+x] = packRGBA(c)
		}
	}
	return pm
}

func packRGBA(c color.RGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.Pixel(x, y)
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, packRGBA(color.RGBAModel.Convert(c).(color.RGBA)))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
