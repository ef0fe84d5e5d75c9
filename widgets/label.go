package widgets

import (
	"github.com/gogpu/gui"
	"github.com/gogpu/gui/internal/treelock"
)

// Label is a bevelled panel holding a Text, and any further children, in
// a horizontal Flow inset by the border property.
type Label struct {
	view *gui.View
	flow *Flow
	text *Text
}

// NewLabel returns a label showing s.
func NewLabel(s string) *Label {
	l := &Label{
		flow: NewFlow(FlowRight | AlignVCenter),
		text: NewText(s),
	}
	l.view = gui.NewView(l)
	l.view.Def("border", gui.Int(0))
	l.view.AddBack(l.flow.View())
	l.flow.Add(l.text.View())
	return l
}

// View returns the label's view.
func (l *Label) View() *gui.View { return l.view }

// Text returns the label's text widget.
func (l *Label) Text() *Text { return l.text }

// Flow returns the label's inner flow.
func (l *Label) Flow() *Flow { return l.flow }

// Add appends child to the label's flow after the text.
func (l *Label) Add(child *gui.View) *Label {
	l.flow.Add(child)
	return l
}

// SetText replaces the text and lays the label out again.
func (l *Label) SetText(s string) *Label {
	treelock.Do(func() {
		l.text.SetText(s)
		l.Layout()
	})
	return l
}

// PrefSize is the flow's preferred size plus the border on each side,
// raised to min_width and min_height.
func (l *Label) PrefSize() (w, h int) {
	treelock.Do(func() {
		b := int(l.view.GetInt("border", 0))
		if b < 0 {
			b = -b
		}
		fw, fh := l.flow.PrefSize()
		w = max(fw+2*b, int(l.view.GotInt("min_width", 0)))
		h = max(fh+2*b, int(l.view.GotInt("min_height", 0)))
	})
	return w, h
}

// Layout sizes the flow inside the border. The label is opaque when its
// color is.
func (l *Label) Layout() {
	treelock.Do(func() {
		b := int(l.view.GetInt("border", 0))
		if b < 0 {
			b = -b
		}
		w, h := l.view.Size()
		l.flow.View().Change(b, b, w-2*b, h-2*b)
		l.flow.Layout()
		if l.view.GetColor("color", DefaultColor)>>24 == 0xff {
			l.view.SetFlags(gui.FlagOpaque, gui.FlagOpaque)
		} else {
			l.view.SetFlags(0, gui.FlagOpaque)
		}
	})
}

// Draw implements gui.Drawer.
func (l *Label) Draw(ctx *gui.Ctx) {
	w, h := l.view.Size()
	col := l.view.GetColor("color", DefaultColor)
	ctx.Panel(col, true, int(l.view.GetInt("border", 0)), 0, 0, w, h)
}
