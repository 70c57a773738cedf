package bounded

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Cursor value for head/tail when the buffer holds nothing
const emptyCursor = -1

var ErrClosed = errors.New("queue is closed")

// Fixed capacity multi-producer multi-consumer FIFO.
// All index and counter mutation happens under mu; notFull and notEmpty have independent wait sets.
type Queue[T any] struct {
	Namespace []string
	Size      int
	buf       []T
	head      int // oldest item, emptyCursor when empty
	tail      int // newest item, emptyCursor when empty
	filled    int
	free      int
	closed    bool // no further items will ever be added
	mu        sync.Mutex
	notFull   *sync.Cond
	notEmpty  *sync.Cond
	Metrics   *MetricStorage
}

type MetricStorage struct {
	Depth    atomic.Uint64 // Current items in queue
	MaxDepth atomic.Uint64 // Highest depth seen

	EnqueueSuccess atomic.Uint64 // items added
	EnqueueWaits   atomic.Uint64 // times a producer suspended on a full queue
	DequeueSuccess atomic.Uint64 // items removed
	DequeueWaits   atomic.Uint64 // times a consumer suspended on an empty queue
}
