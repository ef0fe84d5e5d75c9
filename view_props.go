package gui

import (
	"fmt"

	"github.com/gogpu/gui/internal/treelock"
)

// Def binds key to val on v itself, shadowing any ancestor binding.
func (v *View) Def(key string, val Value) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	if v.props == nil {
		v.props = make(map[string]Value)
	}
	v.props[key] = val
	return v
}

// Defs binds several keys at once.
func (v *View) Defs(props map[string]Value) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	for k, val := range props {
		v.Def(k, val)
	}
	return v
}

// Undef removes v's own binding of key.
func (v *View) Undef(key string) *View {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	delete(v.props, key)
	return v
}

// Set rewrites the binding of key on the nearest of v and its ancestors
// that defines it. It returns ErrUndefinedProperty if none does.
func (v *View) Set(key string, val Value) error {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	for a := v; a != nil; a = a.parent {
		if _, ok := a.props[key]; ok {
			a.props[key] = val
			return nil
		}
	}
	return fmt.Errorf("set %q: %w", key, ErrUndefinedProperty)
}

// Get returns the value of key on the nearest of v and its ancestors that
// defines it. It reports false if none does.
func (v *View) Get(key string) (Value, bool) {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	for a := v; a != nil; a = a.parent {
		if val, ok := a.props[key]; ok {
			return val, true
		}
	}
	return Value{}, false
}

// Got returns v's own binding of key, ignoring ancestors.
func (v *View) Got(key string) (Value, bool) {
	treelock.Tree.Lock()
	defer treelock.Tree.Unlock()
	val, ok := v.props[key]
	return val, ok
}

// GetInt returns the inherited integer property key, or def.
func (v *View) GetInt(key string, def int64) int64 {
	if val, ok := v.Get(key); ok {
		if i, ok := val.Int(); ok {
			return i
		}
	}
	return def
}

// GetFloat returns the inherited float property key, or def.
func (v *View) GetFloat(key string, def float64) float64 {
	if val, ok := v.Get(key); ok {
		if f, ok := val.Float(); ok {
			return f
		}
	}
	return def
}

// GetString returns the inherited string property key, or def.
func (v *View) GetString(key string, def string) string {
	if val, ok := v.Get(key); ok {
		if s, ok := val.Str(); ok {
			return s
		}
	}
	return def
}

// GetBool returns the inherited bool property key, or def.
func (v *View) GetBool(key string, def bool) bool {
	if val, ok := v.Get(key); ok {
		if b, ok := val.Bool(); ok {
			return b
		}
	}
	return def
}

// GotInt returns v's own integer property key, or def.
func (v *View) GotInt(key string, def int64) int64 {
	if val, ok := v.Got(key); ok {
		if i, ok := val.Int(); ok {
			return i
		}
	}
	return def
}

// GetColor returns the inherited color property key as 0xAARRGGBB, or def.
func (v *View) GetColor(key string, def uint32) uint32 {
	return uint32(v.GetInt(key, int64(def)))
}
