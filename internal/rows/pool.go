// Package rows splits per-row pixel work into bands run on a shared pool
// of goroutines.
package rows

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs bands of rows on a fixed set of worker goroutines.
//
// Each worker pulls from its own queue and steals from the others when
// it runs dry, so a band that is slow to process does not leave the
// remaining workers idle.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu is held shared while bands are queued and exclusively by Close,
	// so every queued band is queued before the workers see done.
	mu sync.RWMutex
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	depth := max(8, workers*4)
	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), depth)
	}
	p.running.Store(true)
	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

var shared = sync.OnceValue(func() *Pool { return NewPool(0) })

// Shared returns the process-wide pool, started on first use.
func Shared() *Pool { return shared() }

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case fn := <-own:
			fn()
			continue
		default:
		}
		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}
		select {
		case <-p.done:
			drain(own)
			return
		case fn := <-own:
			fn()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

// steal takes one queued band from another worker, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := range p.queues {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// Bands calls fn for consecutive half-open row ranges [y0, y1) covering
// [0, height), each at least minRows tall, and returns when all calls
// have finished. Calls run concurrently and must touch disjoint rows.
// A single band, or a closed pool, runs fn on the calling goroutine.
func (p *Pool) Bands(height, minRows int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	minRows = max(1, minRows)
	n := min(p.workers*2, height/minRows)
	if n <= 1 {
		fn(0, height)
		return
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		fn(0, height)
		return
	}
	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		y0, y1 := height*i/n, height*(i+1)/n
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			fn(y0, y1)
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// Close stops the workers after they finish queued bands. Later calls to
// Bands run inline. Close is safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}
