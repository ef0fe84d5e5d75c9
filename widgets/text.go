package widgets

import (
	"github.com/gogpu/gui"
	"github.com/gogpu/gui/internal/treelock"
	"github.com/gogpu/gui/path"
	"github.com/gogpu/gui/text"
)

// DefaultFontSize is the font size used when no view defines font_size.
const DefaultFontSize = 16

// Text draws its text property on one line in ink_color, vertically
// centred. The background is left untouched.
type Text struct {
	view *gui.View

	// shaped outlines, keyed by the properties they were built from
	key   textKey
	polys []*path.Path
	ext   text.Extent
}

type textKey struct {
	s, font string
	size    int
}

// NewText returns a text view showing s.
func NewText(s string) *Text {
	t := &Text{}
	t.view = gui.NewView(t)
	t.view.SetFlags(0, gui.FlagOpaque)
	t.view.Def("text", gui.String(s))
	return t
}

// View returns the text's view.
func (t *Text) View() *gui.View { return t.view }

// SetText replaces the text and damages the view.
func (t *Text) SetText(s string) {
	treelock.Do(func() {
		if err := t.view.Set("text", gui.String(s)); err != nil {
			gui.Logger().Warn("widgets: text not set", "err", err)
		}
		t.view.Dirty()
	})
}

// String returns the text.
func (t *Text) String() string {
	return t.view.GetString("text", "")
}

func (t *Text) font() (*text.Font, textKey, error) {
	k := textKey{
		s:    t.view.GetString("text", ""),
		font: t.view.GetString("font", text.Default),
		size: int(t.view.GetInt("font_size", DefaultFontSize)),
	}
	f, err := text.Open(k.font, k.size)
	return f, k, err
}

// shape returns the outlines of the current text, reshaping only when a
// property they depend on changed. It must be called with the tree lock
// held.
func (t *Text) shape() ([]*path.Path, text.Extent, error) {
	f, k, err := t.font()
	if err != nil {
		return nil, text.Extent{}, err
	}
	if k != t.key || t.polys == nil && k.s != "" {
		t.polys, t.ext = f.Paths(k.s)
		t.key = k
	}
	return t.polys, t.ext, nil
}

// PrefSize is the extent of the shaped text. If the font cannot be
// opened, each character is assumed to be 8x16.
func (t *Text) PrefSize() (w, h int) {
	treelock.Do(func() {
		f, k, err := t.font()
		if err != nil {
			w, h = 8*len([]rune(k.s)), 16
			return
		}
		ext := f.Measure(k.s)
		w, h = ext.W, ext.H
	})
	return w, h
}

// Draw implements gui.Drawer.
func (t *Text) Draw(ctx *gui.Ctx) {
	polys, ext, err := t.shape()
	if err != nil {
		gui.Logger().Warn("widgets: text font unavailable", "err", err)
		return
	}
	if len(polys) == 0 {
		return
	}
	_, h := t.view.Size()
	ctx.SetColor(t.view.GetColor("ink_color", DefaultInk)).FillPath(0, (h-ext.H)/2, polys...)
}
