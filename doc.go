// Package gui provides a retained-mode windowing compositor.
//
// # Overview
//
// Applications build a tree of rectangular views. Each view records its
// geometry, an inherited property table, a dirty region (what must be
// redrawn) and an opaque region (what it paints solid). Once per frame the
// render goroutine runs Composite, which reduces the dirty and opaque state
// of the whole tree to a minimal ordered draw list, and then calls each
// listed view's Draw hook with a context clipped to the damage it owns.
//
// # Quick Start
//
//	import "github.com/gogpu/gui"
//
//	scr := gui.NewScreen(1280, 960, gui.WithColor(0xff202020))
//	v := gui.NewView(myWidget)
//	v.Change(100, 100, 256, 256)
//	scr.Root().AddFront(v)
//	err := scr.Run(ctx)
//
// # Stacking
//
// Children are kept back to front: AddBack inserts at the head of the child
// list, AddFront at the tail, and the last child is drawn on top. The draw
// list is in painter's order.
//
// # Concurrency
//
// Any goroutine may mutate the tree. Every mutation and traversal holds a
// single process-wide re-entrant lock, so callbacks passed to ForwardTree
// and BackwardTree may call back into the tree. Texture creation is
// marshalled to the render goroutine through a TaskQueue.
//
// # Coordinate System
//
// Integer pixels, origin at top-left, X right, Y down. View bounds are
// relative to the parent; dirty and opaque regions are relative to the view.
//
// # Sub-packages
//
//   - region: rectangle set algebra
//   - path: fixed-point polylines, Bezier flattening, stroking
//   - text: font registry, shaping, glyph outlines
//   - widgets: Backdrop, Flow, Label, Text, Progress
package gui

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
