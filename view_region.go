package gui

import (
	"github.com/gogpu/gui/internal/treelock"
	"github.com/gogpu/gui/region"
)

// AddOpaque declares r, in v's coordinates, as painted solid by Draw.
func (v *View) AddOpaque(r region.Rect) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	v.opaque.PasteRect(r.Intersect(region.XYWH(0, 0, v.w, v.h)))
	return v
}

// SubOpaque removes r from the opaque region.
func (v *View) SubOpaque(r region.Rect) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	v.opaque.RemoveRect(r)
	return v
}

// ClrOpaque empties the opaque region.
func (v *View) ClrOpaque() *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	v.opaque.Free()
	return v
}

// OpaqueRegion returns a copy of the opaque region.
func (v *View) OpaqueRegion() region.Region {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	return v.opaque.Clone()
}

// AddDirty marks r, in v's coordinates, for redraw.
func (v *View) AddDirty(r region.Rect) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	v.damage(r)
	return v
}

// TransDirty shifts the pending dirty region by (dx, dy), clipping it to
// the view.
func (v *View) TransDirty(dx, dy int) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	v.dirty.Translate(dx, dy)
	v.dirty.ClipRect(region.XYWH(0, 0, v.w, v.h))
	return v
}

// Dirty marks the whole view for redraw.
func (v *View) Dirty() *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	v.damage(region.XYWH(0, 0, v.w, v.h))
	return v
}

// DirtyAll requests a redraw of the whole view, propagated to the parent on
// the next composite.
func (v *View) DirtyAll() *View {
	return v.SetFlags(FlagDirtyAll, FlagDirtyAll)
}

// DirtyRegion returns a copy of the pending dirty region.
func (v *View) DirtyRegion() region.Region {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	return v.dirty.Clone()
}

// SetFlags replaces the bits selected by mask with flags. A pending
// FlagDirtyAll is never cleared here; the compositor consumes it.
func (v *View) SetFlags(flags, mask Flags) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	pending := v.flags & FlagDirtyAll
	v.flags = (v.flags &^ mask) | flags | pending
	if v.flags&FlagDirtyAll != 0 {
		markDirty()
	}
	return v
}

// Flags returns v's flags.
func (v *View) Flags() Flags {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	return v.flags
}

// SetHidden hides or shows v and its subtree. The area it covers is damaged
// in the parent either way, and a shown view is redrawn in full.
func (v *View) SetHidden(hidden bool) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	was := v.flags&FlagHidden != 0
	if was == hidden {
		return v
	}
	if hidden {
		v.flags |= FlagHidden
	} else {
		v.flags &^= FlagHidden
		v.dirtyAll()
	}
	if p := v.parent; p != nil {
		p.damage(v.rect())
	}
	return v
}

// Hidden reports whether v is hidden.
func (v *View) Hidden() bool {
	return v.Flags()&FlagHidden != 0
}
