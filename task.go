package gui

import (
	"sync"

	"github.com/gogpu/gpucontext"
)

// Task is a unit of work run on the render goroutine. tc is the render
// goroutine's texture creator and may be nil.
type Task func(tc gpucontext.TextureCreator)

// TaskQueue marshals work onto the render goroutine. Any goroutine may
// Post; only the render goroutine calls Run.
type TaskQueue struct {
	mu    sync.Mutex
	tasks []Task
}

// NewTaskQueue returns an empty queue.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

// Post queues t to run on the next Run.
func (q *TaskQueue) Post(t Task) {
	q.mu.Lock()
	q.tasks = append(q.tasks, t)
	q.mu.Unlock()
}

// Len returns the number of pending tasks.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Run executes pending tasks in posting order on the calling goroutine
// until the queue is empty, including tasks posted by running tasks.
// It returns the number of tasks run.
func (q *TaskQueue) Run(tc gpucontext.TextureCreator) int {
	n := 0
	for {
		q.mu.Lock()
		batch := q.tasks
		q.tasks = nil
		q.mu.Unlock()
		if len(batch) == 0 {
			return n
		}
		for _, t := range batch {
			t(tc)
		}
		n += len(batch)
	}
}
