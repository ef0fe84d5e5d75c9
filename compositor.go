package gui

import (
	"slices"

	"github.com/gogpu/gui/internal/treelock"
	"github.com/gogpu/gui/region"
)

// DrawItem is one entry of a frame's draw list: the view to draw, its
// absolute origin and the area it must repaint, in screen coordinates.
type DrawItem struct {
	View *View
	X, Y int
	Clip region.Region
}

// DrawList is a frame's draw list in painter's order.
type DrawList []DrawItem

// Composite reduces the dirty and opaque state of the tree rooted at root
// to the views that must be redrawn, and the clip each one is drawn with.
// Dirty regions and pending FlagDirtyAll bits are consumed.
//
// The pass has three phases: absolute origins are computed; damage is
// merged up to the root with every opaque area removed from the views
// beneath it; the remaining damage is then handed down, front to back,
// to the views covering it. Subtrees that receive no damage are skipped.
func Composite(root *View) DrawList {
	var list DrawList
	treelock.Do(func() {
		absolute(root)
		visible(root)
		list = distribute(root)
	})
	return list
}

// absolute records each view's screen origin.
func absolute(root *View) {
	var ox, oy int
	backwardTree(root,
		func(v *View) bool {
			ox += v.x
			oy += v.y
			v.ctxX, v.ctxY = ox, oy
			return true
		},
		func(v *View) {
			ox -= v.x
			oy -= v.y
		})
}

// visible merges every view's damage into the root's dirty region, in root
// coordinates, removing the areas hidden by opaque views.
func visible(root *View) {
	forwardTree(root,
		func(v *View) bool {
			if v.flags&FlagHidden != 0 {
				return false
			}
			if v != root {
				occlude(root, v)
			}
			return true
		},
		func(v *View) {
			if v.flags&FlagHidden != 0 {
				return
			}
			if v == root {
				v.dirty.ClipRect(region.XYWH(0, 0, v.w, v.h))
				if v.flags&FlagDirtyAll != 0 {
					v.flags &^= FlagDirtyAll
					v.dirty.PasteRect(region.XYWH(0, 0, v.w, v.h))
				}
				return
			}
			p := v.parent
			v.dirty.ClipRect(region.Rect{X0: -v.x, Y0: -v.y, X1: p.w - v.x, Y1: p.h - v.y})
			p.dirty.PasteRegion(&v.dirty, v.x, v.y)
			v.dirty.Free()
			if v.flags&FlagDirtyAll != 0 {
				v.flags &^= FlagDirtyAll
				p.dirty.PasteRect(v.rect().Intersect(region.XYWH(0, 0, p.w, p.h)))
			}
		})
}

// occlude removes v's opaque area from the dirty regions of its ancestors
// up to root, clipping to each ancestor on the way.
func occlude(root, v *View) {
	if v.flags&FlagOpaque != 0 {
		r := region.XYWH(0, 0, v.w, v.h)
		for c := v; c != root; c = c.parent {
			p := c.parent
			r = r.Translate(c.x, c.y).Intersect(region.XYWH(0, 0, p.w, p.h))
			if r.Empty() {
				return
			}
			p.dirty.RemoveRect(r)
		}
		return
	}
	if v.opaque.Empty() {
		return
	}
	var tmp region.Region
	p := v.parent
	region.CopyRect(&tmp, &v.opaque, 0, 0,
		region.Rect{X0: -v.x, Y0: -v.y, X1: p.w - v.x, Y1: p.h - v.y})
	for c := v; c != root && !tmp.Empty(); c = c.parent {
		p := c.parent
		tmp.Translate(c.x, c.y)
		tmp.ClipRect(region.XYWH(0, 0, p.w, p.h))
		p.dirty.RemoveRegion(&tmp, 0, 0)
	}
}

// distribute hands the root's damage down the tree front to back and
// returns the views left holding damage, in painter's order.
func distribute(root *View) DrawList {
	var list DrawList
	root.dirty.Translate(root.ctxX, root.ctxY)
	backwardTree(root,
		func(v *View) bool {
			if v.flags&FlagHidden != 0 {
				return false
			}
			if v == root {
				return !v.dirty.Empty()
			}
			abs := region.XYWH(v.ctxX, v.ctxY, v.w, v.h)
			v.dirty.Free()
			region.CopyRect(&v.dirty, &v.parent.dirty, 0, 0, abs)
			if v.dirty.Empty() {
				return false
			}
			claim(root, v, abs)
			return true
		},
		func(v *View) {
			if v.flags&FlagHidden != 0 || v.dirty.Empty() {
				return
			}
			list = append(list, DrawItem{View: v, X: v.ctxX, Y: v.ctxY, Clip: v.dirty})
			v.dirty = region.Region{}
		})
	slices.Reverse(list)
	return list
}

// claim removes the opaque part of v, at absolute rect abs, from the
// damage still held by its ancestors so nothing behind it is redrawn.
func claim(root, v *View, abs region.Rect) {
	if v.flags&FlagOpaque != 0 {
		r := abs
		for c := v.parent; ; c = c.parent {
			r = r.Intersect(region.XYWH(c.ctxX, c.ctxY, c.w, c.h))
			if r.Empty() {
				return
			}
			c.dirty.RemoveRect(r)
			if c == root {
				return
			}
		}
	}
	if v.opaque.Empty() {
		return
	}
	var tmp region.Region
	region.CopyRect(&tmp, &v.opaque, v.ctxX, v.ctxY, region.XYWH(0, 0, v.w, v.h))
	for c := v.parent; ; c = c.parent {
		tmp.ClipRect(region.XYWH(c.ctxX, c.ctxY, c.w, c.h))
		if tmp.Empty() {
			return
		}
		c.dirty.RemoveRegion(&tmp, 0, 0)
		if c == root {
			return
		}
	}
}
