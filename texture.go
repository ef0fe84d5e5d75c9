package gui

import (
	"errors"
	"fmt"
	"image"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Texture is a handle to pixel data uploaded to the render goroutine.
// The underlying GPU texture is created by a queued task; Handle returns
// ErrTextureNotReady until that task has run.
type Texture struct {
	width, height int

	// Format is the pixel layout of the uploaded data.
	Format gputypes.TextureFormat

	// Blend is the blend state the texture is drawn with: source times one
	// plus destination times one minus source alpha.
	Blend gputypes.BlendState

	state atomic.Pointer[textureState]
}

var errTextureDestroyed = errors.New("gui: update of destroyed texture")

type textureState struct {
	handle gpucontext.Texture
	err    error
}

func newTexture(width, height int) *Texture {
	return &Texture{
		width:  width,
		height: height,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Blend:  gputypes.BlendStatePremultiplied(),
	}
}

// Size returns the texture size in pixels.
func (t *Texture) Size() (w, h int) { return t.width, t.height }

// Handle returns the render-side texture, or the upload error.
func (t *Texture) Handle() (gpucontext.Texture, error) {
	s := t.state.Load()
	if s == nil {
		return nil, ErrTextureNotReady
	}
	return s.handle, s.err
}

// Release destroys the render-side texture on the render goroutine, if the
// handle supports it.
func (t *Texture) Release(q *TaskQueue) {
	q.Post(func(gpucontext.TextureCreator) {
		s := t.state.Swap(nil)
		if s == nil || s.handle == nil {
			return
		}
		if d, ok := s.handle.(interface{ Destroy() }); ok {
			d.Destroy()
		}
	})
}

// Upload snapshots the pixmap and queues a task that creates, or updates,
// its texture on the render goroutine. The returned texture is the same on
// every call.
func (p *Pixmap) Upload(q *TaskQueue) *Texture {
	if p.tex == nil {
		p.tex = newTexture(p.width, p.height)
	}
	tex := p.tex
	data := p.RGBA(p.Bounds())
	q.Post(func(tc gpucontext.TextureCreator) {
		if s := tex.state.Load(); s != nil && s.handle != nil {
			if u, ok := s.handle.(gpucontext.TextureUpdater); ok {
				if err := u.UpdateData(data); err != nil {
					Logger().Warn("gui: texture update failed", "err", err)
					tex.state.Store(&textureState{handle: s.handle, err: err})
				}
				return
			}
		}
		if tc == nil {
			tex.state.Store(&textureState{err: ErrNoTextureCreator})
			return
		}
		h, err := tc.NewTextureFromRGBA(tex.width, tex.height, data)
		if err != nil {
			Logger().Warn("gui: texture creation failed", "err", err)
			err = fmt.Errorf("upload %dx%d: %w", tex.width, tex.height, err)
		}
		tex.state.Store(&textureState{handle: h, err: err})
	})
	return tex
}

// Texture returns the texture from the last Upload, or nil.
func (p *Pixmap) Texture() *Texture { return p.tex }

// SoftwareTextures is a gpucontext.TextureCreator that keeps textures in
// memory, for headless rendering and tests.
type SoftwareTextures struct{}

var _ gpucontext.TextureCreator = SoftwareTextures{}

// NewTextureFromRGBA implements gpucontext.TextureCreator.
func (SoftwareTextures) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("gui: texture data is %d bytes, want %d", len(data), width*height*4)
	}
	return &SoftTexture{width: width, height: height, pix: append([]byte(nil), data...)}, nil
}

// SoftTexture is an in-memory texture of premultiplied RGBA bytes.
type SoftTexture struct {
	width, height int
	pix           []byte
	destroyed     bool
}

var (
	_ gpucontext.Texture              = (*SoftTexture)(nil)
	_ gpucontext.TextureUpdater       = (*SoftTexture)(nil)
	_ gpucontext.TextureRegionUpdater = (*SoftTexture)(nil)
)

// Width implements gpucontext.Texture.
func (t *SoftTexture) Width() int { return t.width }

// Height implements gpucontext.Texture.
func (t *SoftTexture) Height() int { return t.height }

// Pix returns the texture's RGBA bytes.
func (t *SoftTexture) Pix() []byte { return t.pix }

// Destroyed reports whether Destroy was called.
func (t *SoftTexture) Destroyed() bool { return t.destroyed }

// Destroy releases the texture memory.
func (t *SoftTexture) Destroy() {
	t.pix = nil
	t.destroyed = true
}

// UpdateData implements gpucontext.TextureUpdater.
func (t *SoftTexture) UpdateData(data []byte) error {
	if t.destroyed {
		return errTextureDestroyed
	}
	if len(data) != len(t.pix) {
		return fmt.Errorf("gui: texture data is %d bytes, want %d", len(data), len(t.pix))
	}
	copy(t.pix, data)
	return nil
}

// UpdateRegion implements gpucontext.TextureRegionUpdater.
func (t *SoftTexture) UpdateRegion(x, y, w, h int, data []byte) error {
	if t.destroyed {
		return errTextureDestroyed
	}
	r := image.Rect(x, y, x+w, y+h)
	if !r.In(image.Rect(0, 0, t.width, t.height)) {
		return fmt.Errorf("gui: region %v outside %dx%d texture", r, t.width, t.height)
	}
	if len(data) != w*h*4 {
		return fmt.Errorf("gui: region data is %d bytes, want %d", len(data), w*h*4)
	}
	for row := 0; row < h; row++ {
		off := ((y+row)*t.width + x) * 4
		copy(t.pix[off:off+w*4], data[row*w*4:(row+1)*w*4])
	}
	return nil
}
