package gui

import (
	"log/slog"
	"time"

	"github.com/gogpu/gpucontext"
)

// DefaultFrameInterval is the frame tick period used when none is given.
const DefaultFrameInterval = 16 * time.Millisecond

// Option configures a Screen during creation.
//
// Example:
//
//	// Headless screen with software textures
//	scr := gui.NewScreen(1280, 960)
//
//	// GPU-backed screen presenting through the host's texture creator
//	scr := gui.NewScreen(1280, 960,
//	    gui.WithTextureCreator(creator),
//	    gui.WithPresenter(gui.NewTexturePresenter(creator)))
type Option func(*options)

// options holds optional configuration for Screen creation.
type options struct {
	interval  time.Duration
	textures  gpucontext.TextureCreator
	presenter Presenter
	logger    *slog.Logger
	color     uint32
}

// defaultOptions returns the default screen options.
func defaultOptions() options {
	return options{
		interval: DefaultFrameInterval,
		textures: SoftwareTextures{},
		color:    0xff000000,
	}
}

// WithFrameInterval sets the frame tick period of Screen.Run.
// Non-positive values keep the default.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithTextureCreator sets the texture creator handed to tasks run on the
// render goroutine and to draw contexts.
func WithTextureCreator(tc gpucontext.TextureCreator) Option {
	return func(o *options) {
		o.textures = tc
	}
}

// WithPresenter sets where each frame's damaged area is shown.
func WithPresenter(p Presenter) Option {
	return func(o *options) {
		o.presenter = p
	}
}

// WithLogger sets the logger used by this screen instead of Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithColor sets the root backdrop color as 0xAARRGGBB.
func WithColor(argb uint32) Option {
	return func(o *options) {
		o.color = argb
	}
}
