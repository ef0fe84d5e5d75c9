// Package treelock provides the re-entrant mutex that serializes every
// mutation and traversal of the view tree.
//
// A traversal callback may call back into tree operations (add, remove,
// property access) on the same goroutine without deadlocking. Other
// goroutines block until the outermost holder releases the lock.
package treelock

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// Mutex is a re-entrant mutual exclusion lock keyed on goroutine identity.
// The zero value is an unlocked mutex.
type Mutex struct {
	mu    sync.Mutex
	owner atomic.Int64 // goroutine id of the holder, 0 when unlocked
	depth int          // guarded by mu
}

// Lock acquires m. If the calling goroutine already holds m, Lock only
// increments the hold count.
func (m *Mutex) Lock() {
	id := goid.Get()
	if m.owner.Load() == id {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(id)
	m.depth = 1
}

// Unlock releases one hold on m. The lock is released to other goroutines
// when the hold count reaches zero. Unlocking a mutex not held by the
// calling goroutine panics.
func (m *Mutex) Unlock() {
	if m.owner.Load() != goid.Get() {
		panic("treelock: unlock of mutex not held by this goroutine")
	}
	m.depth--
	if m.depth > 0 {
		return
	}
	m.owner.Store(0)
	m.mu.Unlock()
}

// Held reports whether the calling goroutine holds m.
func (m *Mutex) Held() bool {
	return m.owner.Load() == goid.Get()
}

// Tree is the process-wide lock shared by all views.
var Tree Mutex

// Do runs fn while holding the tree lock.
func Do(fn func()) {
	Tree.Lock()
	defer Tree.Unlock()
	fn()
}
