// Blocking bounded ring buffer queue with an explicit closed state
package bounded

import (
	"context"
	"fmt"
	"multilookup/internal/global"
	"sync"
)

// Creates a new queue
func New[T any](namespace []string, capacity int) (new *Queue[T], err error) {
	if capacity < 1 {
		err = fmt.Errorf("capacity must be greater than or equal to 1")
		return
	}

	new = &Queue[T]{
		Namespace: append(append([]string(nil), namespace...), global.NSQueue),
		Size:      capacity,
		buf:       make([]T, capacity),
		head:      emptyCursor,
		tail:      emptyCursor,
		free:      capacity,
		Metrics:   &MetricStorage{},
	}
	new.notFull = sync.NewCond(&new.mu)
	new.notEmpty = sync.NewCond(&new.mu)
	return
}

// Adds an item, suspending while the queue is full.
// Fails with ErrClosed once the queue has been closed, or with the context error if ctx ends while waiting.
func (queue *Queue[T]) Enqueue(ctx context.Context, item T) (err error) {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	if queue.filled == queue.Size && !queue.closed {
		stop := context.AfterFunc(ctx, queue.wakeAll)
		defer stop()

		for queue.filled == queue.Size && !queue.closed && ctx.Err() == nil {
			queue.Metrics.EnqueueWaits.Add(1)
			queue.notFull.Wait()
		}
	}

	if queue.closed {
		err = ErrClosed
		return
	}
	if queue.filled == queue.Size {
		err = ctx.Err()
		return
	}

	if queue.tail == emptyCursor {
		queue.head = 0
		queue.tail = 0
	} else {
		queue.tail = (queue.tail + 1) % queue.Size
	}
	queue.buf[queue.tail] = item
	queue.filled++
	queue.free--
	if queue.filled > queue.Size {
		panic(fmt.Sprintf("queue %v holds %d items with capacity %d", queue.Namespace, queue.filled, queue.Size))
	}

	depth := uint64(queue.filled)
	queue.Metrics.Depth.Store(depth)
	if depth > queue.Metrics.MaxDepth.Load() {
		queue.Metrics.MaxDepth.Store(depth)
	}
	queue.Metrics.EnqueueSuccess.Add(1)

	queue.notEmpty.Signal()
	return
}

// Removes the oldest item, suspending while the queue is empty and not closed.
// ok is false only when the queue is closed and drained, or ctx ended while waiting.
func (queue *Queue[T]) Dequeue(ctx context.Context) (item T, ok bool) {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	if queue.filled == 0 && !queue.closed {
		stop := context.AfterFunc(ctx, queue.wakeAll)
		defer stop()

		for queue.filled == 0 && !queue.closed && ctx.Err() == nil {
			queue.Metrics.DequeueWaits.Add(1)
			queue.notEmpty.Wait()
		}
	}

	if queue.filled == 0 {
		// closed and drained, or cancelled
		return
	}

	var zero T
	item = queue.buf[queue.head]
	queue.buf[queue.head] = zero // release reference held by the slot

	if queue.head == queue.tail {
		// last item removed
		queue.head = emptyCursor
		queue.tail = emptyCursor
	} else {
		queue.head = (queue.head + 1) % queue.Size
	}
	queue.filled--
	queue.free++

	queue.Metrics.Depth.Store(uint64(queue.filled))
	queue.Metrics.DequeueSuccess.Add(1)

	queue.notFull.Signal()
	ok = true
	return
}

// Marks the queue as finished. Buffered items are still delivered; blocked callers wake.
func (queue *Queue[T]) Close() {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	if queue.closed {
		return
	}
	queue.closed = true
	queue.notEmpty.Broadcast()
	queue.notFull.Broadcast()
}

// Current number of buffered items
func (queue *Queue[T]) Len() (filled int) {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	filled = queue.filled
	return
}

func (queue *Queue[T]) Cap() (capacity int) {
	capacity = queue.Size
	return
}

func (queue *Queue[T]) Closed() (closed bool) {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	closed = queue.closed
	return
}

// Wakes every waiter so it can re-check its context
func (queue *Queue[T]) wakeAll() {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	queue.notEmpty.Broadcast()
	queue.notFull.Broadcast()
}
