package widgets

import (
	"github.com/gogpu/gui"
	"github.com/gogpu/gui/internal/treelock"
)

// FlowFlags control how a Flow places its children.
type FlowFlags uint32

// Flow flags.
const (
	FlowLeft FlowFlags = 1 << iota
	FlowRight
	FlowUp
	FlowDown
	FlowFillW
	FlowFillH
	FlowLastW
	FlowLastH
	AlignHCenter
	AlignHLeft
	AlignHRight
	AlignVCenter
	AlignVTop
	AlignVBottom
)

// Common flow layouts.
const (
	FlowDownFill  = FlowDown | FlowFillW | FlowLastH
	FlowUpFill    = FlowUp | FlowFillW | FlowLastH
	FlowRightFill = FlowRight | FlowFillH | FlowLastW
	FlowLeftFill  = FlowLeft | FlowFillH | FlowLastW
	FlowStackFill = FlowFillW | FlowFillH | FlowLastW | FlowLastH
)

// Flow lays its children out in a line, in child order, each at its
// preferred size. Fill flags stretch children across the other axis and
// the last flags stretch the final child to the far edge.
type Flow struct {
	view *gui.View
}

// NewFlow returns a flow with the given flags stored in its flow_flags
// property. A flow draws nothing and is neither solid nor opaque.
func NewFlow(flags FlowFlags) *Flow {
	f := &Flow{}
	f.view = gui.NewView(f)
	f.view.SetFlags(0, gui.FlagSolid|gui.FlagOpaque)
	f.view.Def("flow_flags", gui.Int(int64(flags)))
	return f
}

// View returns the flow's view.
func (f *Flow) View() *gui.View { return f.view }

// Add appends children in front of the existing ones and lays the flow
// out again.
func (f *Flow) Add(children ...*gui.View) *Flow {
	treelock.Do(func() {
		for _, c := range children {
			f.view.AddFront(c)
		}
		f.Layout()
	})
	return f
}

// Flags returns the flow_flags property.
func (f *Flow) Flags() FlowFlags {
	return FlowFlags(f.view.GotInt("flow_flags", 0))
}

// PrefSize sums the children's preferred sizes along the flow direction
// and takes the largest across it.
func (f *Flow) PrefSize() (w, h int) {
	treelock.Do(func() {
		flags := f.Flags()
		for _, c := range f.view.Children() {
			cw, ch := c.PrefSize()
			if flags&(FlowLeft|FlowRight) != 0 {
				w += cw
			}
			if flags&(FlowUp|FlowDown) != 0 {
				h += ch
			}
			w = max(w, cw)
			h = max(h, ch)
		}
		w = max(w, int(f.view.GotInt("min_width", 0)))
		h = max(h, int(f.view.GotInt("min_height", 0)))
	})
	return w, h
}

// Layout places the children.
func (f *Flow) Layout() {
	treelock.Do(func() {
		flags := f.Flags()
		w, h := f.view.Size()
		kids := f.view.Children()

		var x, y int
		if flags&FlowLeft != 0 {
			x = w
		}
		if flags&FlowUp != 0 {
			y = h
		}
		for i, c := range kids {
			cw, ch := c.PrefSize()
			cx, cy := x, y
			if flags&FlowDown != 0 {
				y += ch
			}
			if flags&FlowUp != 0 {
				y -= ch
				cy = y
			}
			if flags&FlowRight != 0 {
				x += cw
			}
			if flags&FlowLeft != 0 {
				x -= cw
				cx = x
			}

			if flags&FlowFillW != 0 {
				cx, cw = 0, w
			}
			if flags&FlowFillH != 0 {
				cy, ch = 0, h
			}

			if i == len(kids)-1 {
				if flags&FlowLastW != 0 {
					if flags&FlowRight != 0 {
						cw = w - cx
					}
					if flags&FlowLeft != 0 {
						cw += cx
						cx = 0
					}
				}
				if flags&FlowLastH != 0 {
					if flags&FlowDown != 0 {
						ch = h - cy
					}
					if flags&FlowUp != 0 {
						ch += cy
						cy = 0
					}
				}
			}

			switch {
			case flags&AlignHCenter != 0:
				cx = (w - cw) / 2
			case flags&AlignHLeft != 0:
				cx = 0
			case flags&AlignHRight != 0:
				cx = w - cw
			}
			switch {
			case flags&AlignVCenter != 0:
				cy = (h - ch) / 2
			case flags&AlignVTop != 0:
				cy = 0
			case flags&AlignVBottom != 0:
				cy = h - ch
			}
			c.Change(cx, cy, cw, ch)
		}
	})
}
