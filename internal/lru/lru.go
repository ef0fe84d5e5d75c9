// Package lru provides a fixed-capacity map that evicts the least recently
// used entry.
package lru

type node[K comparable, V any] struct {
	key        K
	val        V
	prev, next *node[K, V]
}

// Cache is a least-recently-used map holding at most a fixed number of
// entries. It is not safe for concurrent use; callers hold their own lock.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*node[K, V]

	// head is the most recently used entry, tail the least.
	head, tail *node[K, V]
}

// New returns an empty cache holding at most capacity entries.
// A capacity below 1 is treated as 1.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	capacity = max(1, capacity)
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*node[K, V], capacity),
	}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int { return len(c.items) }

// Cap returns the maximum number of entries.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	n, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToFront(n)
	return n.val, true
}

// Put stores val under key as the most recently used entry. If the cache
// was full, the least recently used entry is dropped and returned.
func (c *Cache[K, V]) Put(key K, val V) (evicted K, ok bool) {
	if n, hit := c.items[key]; hit {
		n.val = val
		c.moveToFront(n)
		return evicted, false
	}
	if len(c.items) >= c.capacity {
		old := c.tail
		c.unlink(old)
		delete(c.items, old.key)
		evicted, ok = old.key, true
	}
	n := &node[K, V]{key: key, val: val}
	c.items[key] = n
	c.pushFront(n)
	return evicted, ok
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	n, ok := c.items[key]
	if !ok {
		return false
	}
	c.unlink(n)
	delete(c.items, key)
	return true
}

// DeleteFunc removes every entry whose key satisfies del and returns how
// many were removed.
func (c *Cache[K, V]) DeleteFunc(del func(K) bool) int {
	removed := 0
	for n := c.head; n != nil; {
		next := n.next
		if del(n.key) {
			c.unlink(n)
			delete(c.items, n.key)
			removed++
		}
		n = next
	}
	return removed
}

// Keys returns the keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	for n := c.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

func (c *Cache[K, V]) pushFront(n *node[K, V]) {
	n.prev, n.next = nil, c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *Cache[K, V]) moveToFront(n *node[K, V]) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *Cache[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
