package chat

import (
	"container/heap"
	"time"
)

// Queue holds scheduled tasks in deadline order; tasks sharing a deadline
// come out in push order. Advance drives it with a manual clock; Pop takes
// the earliest task whatever the clock says, for callers whose own timers
// decide when a task is due.
type Queue struct {
	now   time.Time
	seq   uint64
	items taskHeap
}

// NewQueue returns an empty queue whose clock starts at start.
func NewQueue(start time.Time) *Queue {
	return &Queue{now: start}
}

// Now returns the queue's clock. Pass it to WithClock so the screen computes
// deadlines on the same timeline.
func (q *Queue) Now() time.Time {
	return q.now
}

// Push schedules t.
func (q *Queue) Push(t Task) {
	heap.Push(&q.items, queued{task: t, seq: q.seq})
	q.seq++
}

// Len returns the number of tasks that have not fired.
func (q *Queue) Len() int {
	return q.items.Len()
}

// Pop removes and returns the earliest task.
func (q *Queue) Pop() (Task, bool) {
	if q.items.Len() == 0 {
		return Task{}, false
	}
	item := heap.Pop(&q.items).(queued)
	return item.task, true
}

// Advance moves the clock forward by d and returns every task now due.
func (q *Queue) Advance(d time.Duration) []Task {
	q.now = q.now.Add(d)

	var due []Task
	for q.items.Len() > 0 && !q.items[0].task.Due.After(q.now) {
		item := heap.Pop(&q.items).(queued)
		due = append(due, item.task)
	}
	return due
}

// Run advances the clock by d and delivers every due task to s.
func (q *Queue) Run(s *Screen, d time.Duration) []Message {
	var delivered []Message
	for _, t := range q.Advance(d) {
		delivered = append(delivered, s.Deliver(t))
	}
	return delivered
}

type queued struct {
	task Task
	seq  uint64
}

type taskHeap []queued

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].task.Due.Equal(h[j].task.Due) {
		return h[i].seq < h[j].seq
	}
	return h[i].task.Due.Before(h[j].task.Due)
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(queued)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
