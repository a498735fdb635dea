package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueue_OrdersByDeadlineThenPushOrder(t *testing.T) {
	q := NewQueue(epoch)

	q.Push(Task{ID: "late", Due: epoch.Add(3 * time.Second)})
	q.Push(Task{ID: "a", Due: epoch.Add(time.Second)})
	q.Push(Task{ID: "b", Due: epoch.Add(time.Second)})
	q.Push(Task{ID: "early", Due: epoch.Add(500 * time.Millisecond)})

	assert.Equal(t, 4, q.Len())

	var ids []string
	for _, task := range q.Advance(5 * time.Second) {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"early", "a", "b", "late"}, ids)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_AdvanceReleasesOnlyDueTasks(t *testing.T) {
	q := NewQueue(epoch)
	q.Push(Task{ID: "x", Due: epoch.Add(time.Second)})

	assert.Empty(t, q.Advance(999*time.Millisecond))
	assert.Equal(t, epoch.Add(999*time.Millisecond), q.Now())
	assert.Equal(t, 1, q.Len())

	due := q.Advance(time.Millisecond)
	assert.Len(t, due, 1)
	assert.Empty(t, q.Advance(time.Hour))
}

func TestQueue_PastDeadlineFiresOnZeroAdvance(t *testing.T) {
	q := NewQueue(epoch)
	q.Push(Task{ID: "overdue", Due: epoch.Add(-time.Second)})

	assert.Len(t, q.Advance(0), 1)
}

func TestQueue_PopIgnoresClock(t *testing.T) {
	q := NewQueue(epoch)
	q.Push(Task{ID: "b", Due: epoch.Add(time.Hour)})
	q.Push(Task{ID: "a", Due: epoch.Add(time.Minute)})
	q.Push(Task{ID: "c", Due: epoch.Add(time.Hour)})

	var ids []string
	for {
		task, ok := q.Pop()
		if !ok {
			break
		}
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Equal(t, epoch, q.Now(), "pop does not move the clock")
}
