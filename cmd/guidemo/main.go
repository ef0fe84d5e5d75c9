// Command guidemo runs the gui compositor headless for a number of frames
// while a second goroutine mutates the view tree, then saves the screen.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/gui"
	"github.com/gogpu/gui/path"
	"github.com/gogpu/gui/widgets"
)

func main() {
	var (
		width    = flag.Int("width", 640, "screen width")
		height   = flag.Int("height", 480, "screen height")
		frames   = flag.Int("frames", 60, "number of animation steps")
		interval = flag.Duration("interval", gui.DefaultFrameInterval, "frame interval")
		output   = flag.String("output", "guidemo.png", "output file")
		verbose  = flag.Bool("v", false, "log every frame")
	)
	flag.Parse()

	if *verbose {
		gui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scr := gui.NewScreen(*width, *height,
		gui.WithColor(0xff202428),
		gui.WithFrameInterval(*interval))
	win, bar, err := buildScene(scr)
	if err != nil {
		log.Fatalf("scene: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scr.Run(ctx)
	})
	g.Go(func() error {
		defer scr.Stop()
		for i := 0; i <= *frames; i++ {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(*interval):
			}
			bar.SetValue(i * 100 / max(*frames, 1))
			x, y := win.Pos()
			w, h := win.Size()
			win.Change(x+1, y, w, h)
		}
		return nil
	})
	if err := g.Wait(); err != nil && ctx.Err() == nil {
		log.Fatalf("run: %v", err)
	}

	// Flush whatever the last tick did not draw.
	if _, err := scr.Frame(); err != nil {
		log.Fatalf("frame: %v", err)
	}
	if err := scr.Buffer().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, %d frames)\n", *output, *width, *height, scr.Frames())
}

// buildScene populates the screen with a grid backdrop and a window made of
// a title label, a stroked curve, an uploaded thumbnail and a progress bar.
func buildScene(scr *gui.Screen) (win *gui.View, bar *widgets.Progress, err error) {
	root := scr.Root()
	rw, rh := root.Size()

	bd := widgets.NewBackdrop(widgets.StyleGrid)
	bd.View().Defs(map[string]gui.Value{
		"color":     gui.Int(0xff202428),
		"ink_color": gui.Int(0xff303840),
	})
	root.AddBack(bd.View().Change(0, 0, rw, rh))

	body := widgets.NewFlow(widgets.FlowDownFill)
	win = body.View()
	win.Defs(map[string]gui.Value{
		"color":     gui.Int(0xffc0c0c0),
		"ink_color": gui.Int(0xff000000),
		"font_size": gui.Int(18),
	})

	title := widgets.NewLabel("guidemo")
	title.View().Defs(map[string]gui.Value{
		"color":     gui.Int(0xff4060a0),
		"ink_color": gui.Int(0xffffffff),
	})
	if err := title.View().Set("border", gui.Int(2)); err != nil {
		return nil, nil, fmt.Errorf("title border: %w", err)
	}

	art := newArtwork(scr.Queue())
	bar = widgets.NewProgress()
	body.Add(title.View(), bar.View(), art.view)

	root.AddFront(win)
	w, h := body.PrefSize()
	win.Change(40, 40, max(w, 260), max(h, 200))
	return win, bar, nil
}

// artwork draws a stroked Bezier curve and a texture uploaded through the
// render goroutine's queue.
type artwork struct {
	view    *gui.View
	outline *path.Path
	tex     *gui.Texture
}

func newArtwork(q *gui.TaskQueue) *artwork {
	a := &artwork{}
	a.view = gui.NewView(a)
	a.view.SetFlags(gui.FlagOpaque, gui.FlagOpaque)

	curve := path.New(0).Cubic(path.IPt(12, 80), path.IPt(60, 0), path.IPt(120, 160), path.IPt(180, 60), path.F(0.25))
	outline, err := path.StrokeOpen(curve, path.F(4), 8, path.JoinRound, path.CapRound, path.CapArrow)
	if err != nil {
		panic(fmt.Sprintf("stroke: %v", err))
	}
	a.outline = outline

	src := gui.NewPixmap(64, 64)
	for y := range 64 {
		for x := range 64 {
			src.SetPixel(x, y, gui.ToPremul(0xff000000|uint32(x*4)<<16|uint32(y*4)<<8|0x80))
		}
	}
	thumb := gui.NewPixmap(32, 32)
	thumb.ResizeHalf(src)
	a.tex = thumb.Upload(q)
	return a
}

func (a *artwork) PrefSize() (w, h int) { return 240, 170 }

func (a *artwork) Draw(ctx *gui.Ctx) {
	w, h := a.view.Size()
	ctx.SetColor(a.view.GetColor("color", widgets.DefaultColor)).FilledBox(0, 0, w, h)
	ctx.SetColor(0xffe0a020).FillPath(0, 0, a.outline)
	if t, err := a.tex.Handle(); err == nil {
		_ = ctx.DrawTexture(t, float32(w-40), 8)
	}
}
