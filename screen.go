package gui

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gogpu/gui/internal/treelock"
	"github.com/gogpu/gui/region"
)

// Presenter shows a finished frame. damage is the area of buf redrawn by
// the frame, in buf coordinates.
type Presenter interface {
	Present(buf *Pixmap, damage *region.Region) error
}

// Screen owns the root view, the back buffer and the render goroutine's
// task queue, and runs the frame loop.
//
// Frame and Run must be called from a single goroutine, the render
// goroutine. The tree may be mutated from any goroutine.
type Screen struct {
	root  *View
	buf   *Pixmap
	queue *TaskQueue
	opts  options
	log   *slog.Logger

	running atomic.Bool
	resize  atomic.Pointer[image.Point]
	frames  atomic.Uint64
}

// screenBackdrop paints the root view with its "color" property.
type screenBackdrop struct {
	view *View
	def  uint32
}

func (b *screenBackdrop) Draw(ctx *Ctx) {
	w, h := b.view.w, b.view.h
	ctx.SetColor(b.view.GetColor("color", b.def)).FilledBox(0, 0, w, h)
}

// NewScreen returns a screen of the given size whose root is an opaque
// backdrop. The first frame redraws everything.
func NewScreen(width, height int, opts ...Option) *Screen {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Screen{
		buf:   NewPixmap(width, height),
		queue: NewTaskQueue(),
		opts:  o,
		log:   o.logger,
	}
	if s.log == nil {
		s.log = Logger()
	}
	bd := &screenBackdrop{def: o.color}
	s.root = NewView(bd)
	bd.view = s.root
	s.root.Def("color", Int(int64(o.color)))
	s.root.SetFlags(FlagOpaque, FlagOpaque)
	s.root.Change(0, 0, width, height)
	return s
}

// Root returns the root view.
func (s *Screen) Root() *View { return s.root }

// Queue returns the render goroutine's task queue.
func (s *Screen) Queue() *TaskQueue { return s.queue }

// Buffer returns the back buffer. It is replaced by Resize.
func (s *Screen) Buffer() *Pixmap { return s.buf }

// Frames returns the number of frames that composited something.
func (s *Screen) Frames() uint64 { return s.frames.Load() }

// Resize requests a new screen size, applied at the start of the next
// frame with a full redraw.
func (s *Screen) Resize(width, height int) {
	s.resize.Store(&image.Point{X: width, Y: height})
	markDirty()
}

// Frame runs one frame: queued tasks, then, if anything changed, the
// compositor, the draw hooks of the views it selected and the presenter.
// It returns the draw list, which is empty when nothing was dirty.
func (s *Screen) Frame() (DrawList, error) {
	if sz := s.resize.Swap(nil); sz != nil {
		s.buf = NewPixmap(sz.X, sz.Y)
		s.root.Change(0, 0, sz.X, sz.Y)
		s.root.DirtyAll()
		s.log.Info("gui: screen resized", "width", sz.X, "height", sz.Y)
	}

	tasks := s.queue.Run(s.opts.textures)
	if !frameDirty.Swap(false) {
		return nil, nil
	}

	var list DrawList
	var damage region.Region
	treelock.Do(func() {
		list = Composite(s.root)
		for i := range list {
			it := &list[i]
			it.View.draw(NewCtx(s.buf, it.X, it.Y, &it.Clip, s.opts.textures))
			damage.PasteRegion(&it.Clip, 0, 0)
		}
	})
	if len(list) > 0 {
		s.frames.Add(1)
	}
	s.log.Debug("gui: frame", "tasks", tasks, "draws", len(list), "damaged", damage.Area())

	if s.opts.presenter != nil && !damage.Empty() {
		if err := s.opts.presenter.Present(s.buf, &damage); err != nil {
			s.log.Warn("gui: present failed", "err", err)
			return list, fmt.Errorf("present: %w", err)
		}
	}
	return list, nil
}

// Run calls Frame once per frame interval until ctx is done or Stop is
// called. It returns ctx's error, a presenter error, or nil after Stop.
func (s *Screen) Run(ctx context.Context) error {
	s.running.Store(true)
	s.log.Info("gui: screen started", "interval", s.opts.interval)
	defer s.log.Info("gui: screen stopped", "frames", s.frames.Load())

	t := time.NewTicker(s.opts.interval)
	defer t.Stop()
	for s.running.Load() {
		select {
		case <-ctx.Done():
			s.running.Store(false)
			return ctx.Err()
		case <-t.C:
		}
		if _, err := s.Frame(); err != nil {
			s.running.Store(false)
			return err
		}
	}
	return nil
}

// Stop makes Run return after the current frame.
func (s *Screen) Stop() {
	s.running.Store(false)
}

// Running reports whether Run is looping.
func (s *Screen) Running() bool {
	return s.running.Load()
}
