package gui

import (
	"testing"

	"github.com/gogpu/gui/region"
)

func opaqueBox(x, y, w, h int) *View {
	return newBox(x, y, w, h).SetFlags(FlagOpaque, FlagOpaque)
}

func TestCompositeSingleOpaqueView(t *testing.T) {
	root := newBox(0, 0, 320, 240)
	full := opaqueBox(0, 0, 320, 240)
	root.AddFront(full)

	list := Composite(root)
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if list[0].View != full {
		t.Error("draw list entry is not the opaque view")
	}
	if a := list[0].Clip.Area(); a != 320*240 {
		t.Errorf("clip area = %d, want %d", a, 320*240)
	}
}

func TestCompositeEndToEnd(t *testing.T) {
	root := newBox(0, 0, 1280, 960)
	child := opaqueBox(107, 107, 256, 256)
	root.AddFront(child)
	Composite(root)

	child.AddDirty(region.XYWH(10, 10, 10, 10))
	list := Composite(root)
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	it := list[0]
	if it.View != child || it.X != 107 || it.Y != 107 {
		t.Errorf("entry = view %d at (%d,%d), want child at (107,107)", it.View.ID(), it.X, it.Y)
	}
	if it.Clip.Len() != 1 || it.Clip.Bounds() != region.XYWH(117, 117, 10, 10) {
		t.Errorf("clip = %v, want [%v]", it.Clip.Rects(), region.XYWH(117, 117, 10, 10))
	}
}

func TestCompositeNothingDirty(t *testing.T) {
	root := newBox(0, 0, 100, 100)
	root.AddFront(newBox(10, 10, 10, 10))
	Composite(root)
	if list := Composite(root); len(list) != 0 {
		t.Errorf("len(list) = %d, want 0", len(list))
	}
}

func TestCompositeMove(t *testing.T) {
	root := newBox(0, 0, 100, 100)
	c := newBox(10, 10, 20, 20)
	root.AddFront(c)
	Composite(root)

	c.Change(11, 10, 20, 20)
	list := Composite(root)
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if list[0].View != root || list[0].Clip.Area() != 420 {
		t.Errorf("root entry area = %d, want 420", list[0].Clip.Area())
	}
	if list[1].View != c || list[1].Clip.Area() != 400 {
		t.Errorf("child entry area = %d, want 400", list[1].Clip.Area())
	}
}

func TestCompositeDirtyAllLeaf(t *testing.T) {
	root := newBox(0, 0, 100, 100)
	mid := newBox(10, 10, 50, 50)
	leaf := newBox(5, 5, 20, 20)
	root.AddFront(mid.AddFront(leaf))
	Composite(root)

	leaf.DirtyAll()
	list := Composite(root)
	want := []*View{root, mid, leaf}
	if len(list) != len(want) {
		t.Fatalf("len(list) = %d, want %d", len(list), len(want))
	}
	for i, it := range list {
		if it.View != want[i] {
			t.Errorf("list[%d] is view %d, want %d", i, it.View.ID(), want[i].ID())
		}
		if b := it.Clip.Bounds(); b != region.XYWH(15, 15, 20, 20) || it.Clip.Area() != 400 {
			t.Errorf("list[%d] clip = %v, want %v", i, it.Clip.Rects(), region.XYWH(15, 15, 20, 20))
		}
	}
	if leaf.Flags()&FlagDirtyAll != 0 {
		t.Error("FlagDirtyAll not consumed")
	}
	if x, y := leaf.Abs(); x != 15 || y != 15 {
		t.Errorf("leaf.Abs() = (%d,%d), want (15,15)", x, y)
	}
}

func TestCompositeVisualOrder(t *testing.T) {
	root := newBox(0, 0, 100, 100)
	a := newBox(10, 10, 50, 50)
	b := newBox(20, 20, 50, 50)
	c := newBox(30, 30, 50, 50)
	root.AddFront(a)
	root.AddFront(b)
	root.AddBack(c)

	list := Composite(root)
	want := []*View{root, c, a, b}
	if len(list) != len(want) {
		t.Fatalf("len(list) = %d, want %d", len(list), len(want))
	}
	for i, it := range list {
		if it.View != want[i] {
			t.Errorf("list[%d] is view %d, want %d", i, it.View.ID(), want[i].ID())
		}
	}
}

func TestCompositeOpaqueHidesBehind(t *testing.T) {
	root := newBox(0, 0, 100, 100)
	back := newBox(10, 10, 20, 20)
	front := opaqueBox(0, 0, 50, 50)
	root.AddFront(back)
	root.AddFront(front)

	for _, it := range Composite(root) {
		if it.View == back {
			t.Fatal("view under an opaque sibling was drawn")
		}
		if it.View == root && it.Clip.Bounds().Overlaps(region.XYWH(0, 0, 50, 50)) {
			t.Errorf("root redrawn under opaque view: %v", it.Clip.Rects())
		}
	}
}

func TestCompositePartialOpaque(t *testing.T) {
	root := newBox(0, 0, 100, 100)
	back := newBox(0, 0, 50, 50)
	front := newBox(0, 0, 50, 50)
	front.AddOpaque(region.XYWH(0, 0, 50, 25))
	root.AddFront(back)
	root.AddFront(front)
	Composite(root)

	back.Dirty()
	list := Composite(root)
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3", len(list))
	}
	for i, it := range list {
		if b := it.Clip.Bounds(); b != region.XYWH(0, 25, 50, 25) {
			t.Errorf("list[%d] clip bounds = %v, want %v", i, b, region.XYWH(0, 25, 50, 25))
		}
	}
}

func TestCompositeHidden(t *testing.T) {
	root := newBox(0, 0, 100, 100)
	h := newBox(0, 0, 50, 50)
	h.AddFront(newBox(0, 0, 10, 10))
	h.SetHidden(true)
	root.AddFront(h)

	list := Composite(root)
	if len(list) != 1 || list[0].View != root {
		t.Fatalf("draw list = %d entries, want root only", len(list))
	}

	h.SetHidden(false)
	list = Composite(root)
	if len(list) != 3 {
		t.Errorf("after show: len(list) = %d, want 3", len(list))
	}
}

func TestCompositeClipsToParent(t *testing.T) {
	root := newBox(0, 0, 100, 100)
	c := newBox(90, 90, 50, 50)
	root.AddFront(c)
	Composite(root)

	c.Dirty()
	list := Composite(root)
	for _, it := range list {
		if b := it.Clip.Bounds(); b != region.XYWH(90, 90, 10, 10) {
			t.Errorf("clip bounds = %v, want %v", b, region.XYWH(90, 90, 10, 10))
		}
	}
}

// entryFor returns the draw list entry of v, or nil.
func entryFor(list DrawList, v *View) *DrawItem {
	for i := range list {
		if list[i].View == v {
			return &list[i]
		}
	}
	return nil
}

func TestCompositeOpaqueMove(t *testing.T) {
	root := newBox(0, 0, 100, 100)
	v := opaqueBox(10, 10, 20, 20)
	root.AddFront(v)
	Composite(root)

	v.Change(40, 40, 20, 20)
	list := Composite(root)
	it := entryFor(list, v)
	if it == nil {
		t.Fatal("moved opaque view not redrawn")
	}
	if it.Clip.Area() != 400 || it.Clip.Bounds() != region.XYWH(40, 40, 20, 20) {
		t.Errorf("moved view clip = %v, want %v", it.Clip.Rects(), region.XYWH(40, 40, 20, 20))
	}
	bg := entryFor(list, root)
	if bg == nil || bg.Clip.Bounds() != region.XYWH(10, 10, 20, 20) || bg.Clip.Area() != 400 {
		t.Errorf("root entry = %v, want the vacated %v", bg, region.XYWH(10, 10, 20, 20))
	}
}

func TestCompositeToFrontOverlapped(t *testing.T) {
	root := newBox(0, 0, 100, 100)
	a := opaqueBox(0, 0, 40, 40)
	b := opaqueBox(20, 20, 40, 40)
	root.AddFront(a)
	root.AddFront(b)
	Composite(root)

	a.ToFront()
	list := Composite(root)
	it := entryFor(list, a)
	if it == nil {
		t.Fatal("raised view not redrawn")
	}
	if !it.Clip.Contains(30, 30) || it.Clip.Area() != 40*40 {
		t.Errorf("raised view clip = %v, want all of %v", it.Clip.Rects(), region.XYWH(0, 0, 40, 40))
	}
	if entryFor(list, b) != nil {
		t.Error("view behind the raised one was redrawn")
	}
}

func TestCompositeReattachOpaque(t *testing.T) {
	root := newBox(0, 0, 100, 100)
	v := opaqueBox(10, 10, 20, 20)
	root.AddFront(v)
	Composite(root)

	v.Sub()
	root.AddFront(v)
	list := Composite(root)
	it := entryFor(list, v)
	if it == nil || it.Clip.Area() != 400 {
		t.Fatalf("re-attached view entry = %v, want a full redraw", it)
	}
}

func TestCompositeMovedParentOpaqueChild(t *testing.T) {
	root := newBox(0, 0, 200, 200)
	win := newBox(40, 40, 100, 100)
	child := opaqueBox(0, 0, 100, 100)
	root.AddFront(win.AddFront(child))
	Composite(root)

	win.Change(41, 40, 100, 100)
	list := Composite(root)
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if it := list[1]; it.View != child || it.Clip.Area() != 100*100 || it.X != 41 {
		t.Errorf("child entry = view %d at x %d area %d, want child at 41 area %d",
			it.View.ID(), it.X, it.Clip.Area(), 100*100)
	}
	if it := list[0]; it.View != root || it.Clip.Bounds() != region.XYWH(40, 40, 1, 100) {
		t.Errorf("root entry clip = %v, want %v", it.Clip.Rects(), region.XYWH(40, 40, 1, 100))
	}
}

func TestCompositePartialOpaqueClippedByParent(t *testing.T) {
	root := newBox(0, 0, 100, 100)
	back := newBox(50, 0, 50, 50)
	p := newBox(0, 0, 50, 50)
	v := newBox(30, 0, 40, 40)
	v.AddOpaque(region.XYWH(0, 0, 40, 40))
	root.AddFront(back)
	root.AddFront(p.AddFront(v))
	Composite(root)

	root.DirtyAll()
	list := Composite(root)
	var all region.Region
	for i := range list {
		all.PasteRegion(&list[i].Clip, 0, 0)
	}
	if all.Area() != 100*100 {
		t.Errorf("draw list covers %d pixels, want %d", all.Area(), 100*100)
	}
	it := entryFor(list, back)
	if it == nil || !it.Clip.Contains(60, 10) || it.Clip.Area() != 50*50 {
		t.Errorf("back sibling entry = %v, want all of %v", it, region.XYWH(50, 0, 50, 50))
	}
}

func BenchmarkComposite(b *testing.B) {
	root := newBox(0, 0, 1280, 960)
	var leaves []*View
	for i := range 32 {
		w := newBox((i%8)*150, (i/8)*200, 140, 190)
		for j := range 4 {
			l := newBox(j*30, j*40, 60, 60)
			w.AddFront(l)
			leaves = append(leaves, l)
		}
		root.AddFront(w)
	}
	Composite(root)
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		leaves[i%len(leaves)].Dirty()
		Composite(root)
		i++
	}
}
