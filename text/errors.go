package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned by Register when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFont is returned by Open for a name never registered.
	ErrUnknownFont = errors.New("text: unknown font")

	// ErrNoOutline is returned by Font.Glyph when the font has no vector
	// outline for a rune.
	ErrNoOutline = errors.New("text: glyph has no outline")

	// ErrBadSize is returned by Open for a non-positive size.
	ErrBadSize = errors.New("text: font size must be positive")
)
