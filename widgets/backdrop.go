package widgets

import "github.com/gogpu/gui"

// Backdrop styles.
const (
	StylePlain = "plain"
	StyleGrid  = "grid"
	StyleAxis  = "axis"
)

// Backdrop fills its bounds with the color property and can overlay a
// grid or a pair of axes in ink_color, selected by the style property.
// Grid lines are spacing pixels apart.
type Backdrop struct {
	view *gui.View
}

// NewBackdrop returns an opaque backdrop with the given style.
func NewBackdrop(style string) *Backdrop {
	b := &Backdrop{}
	b.view = gui.NewView(b)
	b.view.SetFlags(gui.FlagOpaque, gui.FlagOpaque)
	b.view.Defs(map[string]gui.Value{
		"style":   gui.String(style),
		"spacing": gui.Int(32),
	})
	return b
}

// View returns the backdrop's view.
func (b *Backdrop) View() *gui.View { return b.view }

// Draw implements gui.Drawer.
func (b *Backdrop) Draw(ctx *gui.Ctx) {
	v := b.view
	w, h := v.Size()
	ctx.SetColor(v.GetColor("color", DefaultColor)).FilledBox(0, 0, w, h)

	ctx.SetColor(v.GetColor("ink_color", DefaultInk))
	switch v.GetString("style", StylePlain) {
	case StyleGrid:
		step := int(v.GetInt("spacing", 32))
		if step <= 0 {
			return
		}
		for x := 0; x < w; x += step {
			ctx.FilledBox(x, 0, 1, h)
		}
		for y := 0; y < h; y += step {
			ctx.FilledBox(0, y, w, 1)
		}
	case StyleAxis:
		ctx.FilledBox(w/2, 0, 1, h)
		ctx.FilledBox(0, h/2, w, 1)
	}
}
