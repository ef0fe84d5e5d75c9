// Package widgets provides the basic view kinds built on the gui view
// tree: a screen Backdrop, the Flow layout container, single-line Text,
// bordered Label and a Progress bar.
//
// Every widget owns a *gui.View, returned by its View method, which is
// what gets attached to the tree. Widgets read their appearance from
// inherited view properties:
//
//	color       fill color as 0xAARRGGBB
//	ink_color   text and line color
//	border      panel bevel depth in pixels; negative is sunken
//	font        registered font name
//	font_size   font size in pixels
//	min_width   minimum preferred width
//	min_height  minimum preferred height
package widgets

import "github.com/gogpu/gui"

// Fallback colors used when no view in the chain defines the property.
const (
	DefaultColor uint32 = 0xffc0c0c0
	DefaultInk   uint32 = 0xff000000
)

// Widget is implemented by every view kind in this package.
type Widget interface {
	View() *gui.View
}
