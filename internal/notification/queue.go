package notification

import (
	"context"
	"sync"
	"time"

	"comment-srv/internal/model"
)

// Queue is an in-process UseCase. Each toast is removed by its own timer.
type Queue struct {
	mu     sync.Mutex
	ttl    time.Duration
	toasts map[string][]model.Toast
	timers map[string]*time.Timer
	closed bool
}

func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{
		ttl:    ttl,
		toasts: map[string][]model.Toast{},
		timers: map[string]*time.Timer{},
	}
}

func (q *Queue) Push(_ context.Context, sc model.Scope, input PushInput) (model.Toast, error) {
	toast, err := NewToast(sc.UserID, input, time.Now(), q.ttl)
	if err != nil {
		return model.Toast{}, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return toast, nil
	}
	// Ids are random, so a collision only replaces the timer key.
	key := sc.UserID + "/" + toast.ID
	q.toasts[sc.UserID] = append(q.toasts[sc.UserID], toast)
	q.timers[key] = time.AfterFunc(q.ttl, func() { q.remove(sc.UserID, toast.ID) })
	return toast, nil
}

func (q *Queue) List(_ context.Context, sc model.Scope) ([]model.Toast, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]model.Toast, len(q.toasts[sc.UserID]))
	copy(out, q.toasts[sc.UserID])
	return out, nil
}

func (q *Queue) Dismiss(_ context.Context, sc model.Scope, id string) error {
	q.remove(sc.UserID, id)
	return nil
}

func (q *Queue) remove(userID, id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	key := userID + "/" + id
	if t, ok := q.timers[key]; ok {
		t.Stop()
		delete(q.timers, key)
	}
	list := q.toasts[userID]
	for i, t := range list {
		if t.ID == id {
			q.toasts[userID] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(q.toasts[userID]) == 0 {
		delete(q.toasts, userID)
	}
}

// Close stops every pending timer and drops queued toasts.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for k, t := range q.timers {
		t.Stop()
		delete(q.timers, k)
	}
	q.toasts = map[string][]model.Toast{}
	q.closed = true
}
