// Package text turns strings into glyph outlines for the compositor.
//
// Fonts are registered by name from TrueType or OpenType data and opened
// at an integer pixel size. Opened fonts are cached by (name, size) and
// are safe for concurrent use. The Go Regular font is registered as
// Default.
//
// Strings are normalized to NFC and shaped with HarfBuzz before their
// glyph outlines are flattened into path.Path polygons, in pixels, with
// the origin at the top-left of the line box:
//
//	f, err := text.Open(text.Default, 18)
//	polys, ext := f.Paths("Hello")
//	ctx.FillPath(x, y, polys...)
package text
