package gui

import (
	"slices"
	"sync/atomic"

	"github.com/gogpu/gui/internal/treelock"
	"github.com/gogpu/gui/region"
)

// Flags are view state bits.
type Flags uint32

// View flags.
const (
	// FlagSolid marks a view that receives pointer input over its whole area.
	FlagSolid Flags = 1 << iota

	// FlagOpaque marks a view whose Draw paints every pixel of its bounds solid.
	FlagOpaque

	// FlagDirtyAll requests a redraw of the whole view on the next frame.
	FlagDirtyAll

	// FlagHidden removes the view and its subtree from composition.
	FlagHidden

	// FlagAtBack keeps the view at the back of its siblings.
	FlagAtBack

	// FlagAtFront keeps the view at the front of its siblings.
	FlagAtFront
)

// Drawer is implemented by view kinds that paint themselves.
// Draw is called on the render goroutine with the tree lock held.
type Drawer interface {
	Draw(ctx *Ctx)
}

// Layouter is implemented by view kinds that position their children.
// Layout is called with the tree lock held whenever the view is resized.
type Layouter interface {
	Layout()
}

// PrefSizer is implemented by view kinds with a preferred size.
type PrefSizer interface {
	PrefSize() (w, h int)
}

// frameDirty is set by every mutation that can change what is on screen
// and cleared by the frame loop before it composites.
var frameDirty atomic.Bool

func markDirty() { frameDirty.Store(true) }

// nextID numbers views in creation order.
var nextID atomic.Int64

// View is one node of the retained scene graph.
//
// A View owns its children, ordered back to front; the parent link is a
// plain back-reference. All fields are guarded by the package tree lock.
// Children slices are never modified in place, so a traversal iterates a
// stable snapshot even when a callback reparents views.
type View struct {
	parent   *View
	children []*View
	props    map[string]Value
	dirty    region.Region
	opaque   region.Region

	x, y, w, h int
	ctxX, ctxY int
	flags      Flags
	id         int64

	impl any
}

// NewView returns a detached view with zero bounds. impl supplies the
// kind-specific behaviour through the optional Drawer, Layouter and
// PrefSizer interfaces; it may be nil for a plain container.
func NewView(impl any) *View {
	return &View{
		flags: FlagSolid,
		id:    nextID.Add(1),
		impl:  impl,
	}
}

// ID returns the view's unique identifier.
func (v *View) ID() int64 { return v.id }

// Impl returns the behaviour value passed to NewView.
func (v *View) Impl() any { return v.impl }

// Parent returns the view's parent, or nil if detached.
func (v *View) Parent() *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	return v.parent
}

// Children returns a copy of the child list, back to front.
func (v *View) Children() []*View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	return slices.Clone(v.children)
}

// AddFront detaches child from any parent and inserts it in front of all
// of v's children.
func (v *View) AddFront(child *View) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	v.attach(child)
	child.parent = v
	v.children = append(slices.Clip(v.children), child)
	v.damage(child.rect())
	child.dirtyAll()
	return v
}

// AddBack detaches child from any parent and inserts it behind all of v's
// children.
func (v *View) AddBack(child *View) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	v.attach(child)
	child.parent = v
	v.children = append([]*View{child}, v.children...)
	v.damage(child.rect())
	child.dirtyAll()
	return v
}

// attach checks that child can be added to v and detaches it.
func (v *View) attach(child *View) {
	for a := v; a != nil; a = a.parent {
		if a == child {
			panic("gui: view added to its own subtree")
		}
	}
	child.detach()
}

// Sub detaches v from its parent. The area it covered is damaged.
func (v *View) Sub() *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	v.detach()
	return v
}

func (v *View) detach() {
	p := v.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, v); i >= 0 {
		p.children = slices.Concat(p.children[:i], p.children[i+1:])
	}
	v.parent = nil
	p.damage(v.rect())
}

// ToFront moves v in front of its siblings.
func (v *View) ToFront() *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	if p := v.parent; p != nil {
		p.AddFront(v)
	}
	return v
}

// ToBack moves v behind its siblings.
func (v *View) ToBack() *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	if p := v.parent; p != nil {
		p.AddBack(v)
	}
	return v
}

// rect returns v's bounds in its parent's coordinates.
func (v *View) rect() region.Rect {
	return region.XYWH(v.x, v.y, v.w, v.h)
}

// damage adds r, in v's coordinates, to v's dirty region.
func (v *View) damage(r region.Rect) {
	r = r.Intersect(region.XYWH(0, 0, v.w, v.h))
	if r.Empty() {
		return
	}
	v.dirty.PasteRect(r)
	markDirty()
}

// dirtyAll schedules a full redraw of v, merged into the parent after
// occlusion so the views in v's subtree repaint their new area.
func (v *View) dirtyAll() {
	v.flags |= FlagDirtyAll
	markDirty()
}

// Change sets v's bounds. The old and new areas are damaged in the parent
// and the whole view is redrawn. If the size changed, the view is laid out
// again.
func (v *View) Change(x, y, w, h int) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	old := v.rect()
	resized := w != v.w || h != v.h
	v.x, v.y, v.w, v.h = x, y, w, h
	switch p := v.parent; {
	case p == nil:
		v.dirtyAll()
	case v.flags&FlagHidden == 0:
		p.damage(old)
		p.damage(v.rect())
		v.dirtyAll()
	}
	if resized {
		v.dirty.ClipRect(region.XYWH(0, 0, w, h))
		v.opaque.ClipRect(region.XYWH(0, 0, w, h))
		v.layout()
	}
	return v
}

// Layout recomputes the geometry of v's children.
func (v *View) Layout() *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	v.layout()
	return v
}

func (v *View) layout() {
	if l, ok := v.impl.(Layouter); ok {
		l.Layout()
	}
}

// Bounds returns v's position relative to its parent and its size.
func (v *View) Bounds() (x, y, w, h int) {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	return v.x, v.y, v.w, v.h
}

// Pos returns v's position relative to its parent.
func (v *View) Pos() (x, y int) {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	return v.x, v.y
}

// Size returns v's size.
func (v *View) Size() (w, h int) {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	return v.w, v.h
}

// PrefSize returns the size v would like to have. Kinds without a
// preference report their current size.
func (v *View) PrefSize() (w, h int) {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	if ps, ok := v.impl.(PrefSizer); ok {
		return ps.PrefSize()
	}
	return v.w, v.h
}

// Abs returns v's absolute screen origin as of the last composite.
func (v *View) Abs() (x, y int) {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	return v.ctxX, v.ctxY
}

func (v *View) draw(ctx *Ctx) {
	if d, ok := v.impl.(Drawer); ok {
		d.Draw(ctx)
	}
}
