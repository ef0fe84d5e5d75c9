package rows

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewPoolDefaultWorkers(t *testing.T) {
	p := NewPool(0)
	defer p.Close()
	if p.Workers() != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers() = %d, want GOMAXPROCS %d", p.Workers(), runtime.GOMAXPROCS(0))
	}
}

// coverage runs Bands and returns how many times each row was visited.
func coverage(p *Pool, height, minRows int) []int {
	var mu sync.Mutex
	seen := make([]int, height)
	p.Bands(height, minRows, func(y0, y1 int) {
		mu.Lock()
		defer mu.Unlock()
		for y := y0; y < y1; y++ {
			seen[y]++
		}
	})
	return seen
}

func TestBandsCoverEveryRowOnce(t *testing.T) {
	p := NewPool(4)
	defer p.Close()
	for _, tt := range []struct{ height, minRows int }{
		{1, 1}, {7, 1}, {100, 16}, {1000, 3}, {31, 0},
	} {
		for y, n := range coverage(p, tt.height, tt.minRows) {
			if n != 1 {
				t.Fatalf("height %d minRows %d: row %d visited %d times", tt.height, tt.minRows, y, n)
			}
		}
	}
}

func TestBandsMinRows(t *testing.T) {
	p := NewPool(8)
	defer p.Close()
	var mu sync.Mutex
	calls := 0
	p.Bands(40, 16, func(y0, y1 int) {
		mu.Lock()
		calls++
		mu.Unlock()
		if y1-y0 < 16 {
			t.Errorf("band [%d,%d) shorter than 16 rows", y0, y1)
		}
	})
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestBandsEmpty(t *testing.T) {
	p := NewPool(2)
	defer p.Close()
	p.Bands(0, 1, func(int, int) { t.Error("fn called for zero height") })
}

func TestBandsAfterClose(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()
	calls := 0
	p.Bands(100, 1, func(y0, y1 int) {
		calls++
		if y0 != 0 || y1 != 100 {
			t.Errorf("band = [%d,%d), want [0,100)", y0, y1)
		}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1 inline call", calls)
	}
}

func TestCloseDuringBands(t *testing.T) {
	p := NewPool(4)
	var rows atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				p.Bands(64, 1, func(y0, y1 int) { rows.Add(int64(y1 - y0)) })
			}
		}()
	}
	time.Sleep(time.Millisecond)
	p.Close()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Bands did not return after Close")
	}
	if got, want := rows.Load(), int64(8*200*64); got != want {
		t.Errorf("rows processed = %d, want %d", got, want)
	}
}

func TestSharedIsSingleton(t *testing.T) {
	if Shared() != Shared() {
		t.Error("Shared() returned different pools")
	}
}

func BenchmarkBands(b *testing.B) {
	p := NewPool(0)
	defer p.Close()
	buf := make([]uint32, 1024*1024)
	b.ReportAllocs()
	for b.Loop() {
		p.Bands(1024, 16, func(y0, y1 int) {
			for i := y0 * 1024; i < y1*1024; i++ {
				buf[i]++
			}
		})
	}
}
