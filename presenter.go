package gui

import (
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gui/region"
)

// TexturePresenter mirrors the back buffer into a texture, uploading only
// the damaged rectangles when the texture supports region updates.
type TexturePresenter struct {
	creator gpucontext.TextureCreator
	tex     gpucontext.Texture
	uploads int
}

var _ Presenter = (*TexturePresenter)(nil)

// NewTexturePresenter returns a presenter creating its texture with tc.
func NewTexturePresenter(tc gpucontext.TextureCreator) *TexturePresenter {
	return &TexturePresenter{creator: tc}
}

// Texture returns the presented texture, or nil before the first frame.
func (p *TexturePresenter) Texture() gpucontext.Texture { return p.tex }

// Uploads returns the number of upload calls made so far.
func (p *TexturePresenter) Uploads() int { return p.uploads }

// Present implements Presenter.
func (p *TexturePresenter) Present(buf *Pixmap, damage *region.Region) error {
	if p.creator == nil {
		return ErrNoTextureCreator
	}
	if p.tex == nil || p.tex.Width() != buf.width || p.tex.Height() != buf.height {
		tex, err := p.creator.NewTextureFromRGBA(buf.width, buf.height, buf.RGBA(buf.Bounds()))
		if err != nil {
			return fmt.Errorf("create %dx%d texture: %w", buf.width, buf.height, err)
		}
		p.tex = tex
		p.uploads++
		return nil
	}
	if ru, ok := p.tex.(gpucontext.TextureRegionUpdater); ok {
		var err error
		damage.Each(func(r region.Rect) {
			rr := image.Rect(r.X0, r.Y0, r.X1, r.Y1).Intersect(buf.Bounds())
			if err != nil || rr.Empty() {
				return
			}
			err = ru.UpdateRegion(rr.Min.X, rr.Min.Y, rr.Dx(), rr.Dy(), buf.RGBA(rr))
			p.uploads++
		})
		return err
	}
	if u, ok := p.tex.(gpucontext.TextureUpdater); ok {
		p.uploads++
		return u.UpdateData(buf.RGBA(buf.Bounds()))
	}
	return ErrUnsupportedTexture
}
