package widgets

import (
	"github.com/gogpu/gui"
	"github.com/gogpu/gui/internal/treelock"
)

// Progress is a horizontal bar showing value between minimum and maximum.
type Progress struct {
	view *gui.View
}

// NewProgress returns a bar over [0, 100] at 0.
func NewProgress() *Progress {
	p := &Progress{}
	p.view = gui.NewView(p)
	p.view.Defs(map[string]gui.Value{
		"value":   gui.Int(0),
		"minimum": gui.Int(0),
		"maximum": gui.Int(100),
	})
	return p
}

// View returns the bar's view.
func (p *Progress) View() *gui.View { return p.view }

// SetValue sets the value property and damages the bar.
func (p *Progress) SetValue(v int) *Progress {
	treelock.Do(func() {
		if err := p.view.Set("value", gui.Int(int64(v))); err != nil {
			gui.Logger().Warn("widgets: progress value not set", "err", err)
		}
		p.view.Dirty()
	})
	return p
}

// Value returns the value property.
func (p *Progress) Value() int {
	return int(p.view.GetInt("value", 0))
}

// PrefSize implements gui.PrefSizer.
func (p *Progress) PrefSize() (w, h int) { return 256, 10 }

// Layout marks the bar opaque when its color is.
func (p *Progress) Layout() {
	if p.view.GetColor("color", DefaultColor)>>24 == 0xff {
		p.view.SetFlags(gui.FlagOpaque, gui.FlagOpaque)
	} else {
		p.view.SetFlags(0, gui.FlagOpaque)
	}
}

// gap returns the filled width for an inner width of inner pixels.
func (p *Progress) gap(inner int) int {
	v := p.view
	lo, hi := v.GetInt("minimum", 0), v.GetInt("maximum", 100)
	if hi <= lo || inner <= 0 {
		return 0
	}
	val := min(max(v.GetInt("value", 0), lo), hi)
	return int((val - lo) * int64(inner) / (hi - lo))
}

// Draw implements gui.Drawer.
func (p *Progress) Draw(ctx *gui.Ctx) {
	w, h := p.view.Size()
	col := p.view.GetColor("color", DefaultColor)
	dark := gui.Darker(col)
	darker := gui.Darker(dark)
	gap := p.gap(w - 2)
	ctx.SetColor(col).Box(0, 0, w, h)
	ctx.SetColor(dark).FilledBox(1, 1, gap, h-2)
	ctx.SetColor(darker).FilledBox(gap+1, 1, w-2-gap, h-2)
}
