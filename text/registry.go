package text

import (
	"bytes"
	"fmt"
	"slices"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gui/internal/lru"
)

// Default is the name the Go Regular font is registered under.
const Default = "sans"

// MaxOpenFonts is the number of (name, size) fonts kept open. Beyond it the
// least recently opened font is dropped from the cache; fonts already
// handed out stay usable.
const MaxOpenFonts = 64

type fontKey struct {
	name string
	size int
}

// registry maps names to parsed font data and caches opened fonts.
// font.Font is read-only and safe for concurrent use, unlike font.Face.
var registry = struct {
	mu    sync.Mutex
	faces map[string]*font.Font
	fonts *lru.Cache[fontKey, *Font]
}{
	faces: make(map[string]*font.Font),
	fonts: lru.New[fontKey, *Font](MaxOpenFonts),
}

func init() {
	if err := Register(Default, goregular.TTF); err != nil {
		panic(err)
	}
}

// Register parses ttf and makes it available to Open under name,
// replacing any font of the same name. Fonts already opened under name
// keep the old data.
func Register(name string, ttf []byte) error {
	if len(ttf) == 0 {
		return ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("text: register %q: %w", name, err)
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.faces[name] = face.Font
	registry.fonts.DeleteFunc(func(k fontKey) bool { return k.name == name })
	return nil
}

// Names returns the registered font names in sorted order.
func Names() []string {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	names := make([]string, 0, len(registry.faces))
	for n := range registry.faces {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Open returns the font registered as name at size pixels per em.
// Repeated calls with the same arguments return the same *Font while it
// is among the MaxOpenFonts most recently opened.
func Open(name string, size int) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("open %q at %d: %w", name, size, ErrBadSize)
	}
	key := fontKey{name, size}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if f, ok := registry.fonts.Get(key); ok {
		return f, nil
	}
	src, ok := registry.faces[name]
	if !ok {
		return nil, fmt.Errorf("open %q: %w", name, ErrUnknownFont)
	}
	f := newFont(name, size, src)
	registry.fonts.Put(key, f)
	return f, nil
}
