package gui

import "github.com/gogpu/gui/internal/treelock"

// ForwardTree walks the subtree rooted at v, visiting children back to
// front. down is called on entering a view; returning false skips its
// children. up is called on leaving every view down was called on.
// The whole walk runs under one acquisition of the tree lock.
func (v *View) ForwardTree(down func(*View) bool, up func(*View)) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	forwardTree(v, down, up)
	return v
}

// BackwardTree is ForwardTree visiting children front to back.
func (v *View) BackwardTree(down func(*View) bool, up func(*View)) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	backwardTree(v, down, up)
	return v
}

func forwardTree(v *View, down func(*View) bool, up func(*View)) {
	if down(v) {
		for _, c := range v.children {
			forwardTree(c, down, up)
		}
	}
	up(v)
}

func backwardTree(v *View, down func(*View) bool, up func(*View)) {
	if down(v) {
		kids := v.children
		for i := len(kids) - 1; i >= 0; i-- {
			backwardTree(kids[i], down, up)
		}
	}
	up(v)
}
