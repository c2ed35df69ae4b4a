package keygrab

import (
	"sync"
	"time"
)

// eventQueue is an unbounded FIFO connecting the OS callback to consumers.
// The producer side never blocks; pushes after close are dropped.
type eventQueue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool

	wake chan struct{} // capacity 1, poked on every push
	done chan struct{} // closed once on close
}

func newEventQueue[T any]() *eventQueue[T] {
	return &eventQueue[T]{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (q *eventQueue[T]) push(v T) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *eventQueue[T]) pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

// recv blocks until an event is available or the queue is closed and
// drained.
func (q *eventQueue[T]) recv() (T, error) {
	for {
		if v, ok := q.pop(); ok {
			return v, nil
		}
		select {
		case <-q.wake:
		case <-q.done:
			// drain anything pushed before close
			if v, ok := q.pop(); ok {
				return v, nil
			}
			var zero T
			return zero, ErrEventLoopNotRunning
		}
	}
}

// recvTimeout is recv with an upper bound on the wait.
func (q *eventQueue[T]) recvTimeout(d time.Duration) (T, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		if v, ok := q.pop(); ok {
			return v, nil
		}
		select {
		case <-q.wake:
		case <-q.done:
			if v, ok := q.pop(); ok {
				return v, nil
			}
			var zero T
			return zero, ErrEventLoopNotRunning
		case <-timer.C:
			var zero T
			return zero, ErrTimeout
		}
	}
}

// tryRecv returns the next event without waiting.
func (q *eventQueue[T]) tryRecv() (T, bool) {
	return q.pop()
}

func (q *eventQueue[T]) close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()
	close(q.done)
}
