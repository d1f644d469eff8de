package queue

import (
	"runtime"
	"sync/atomic"
)

// Queue is the interface for handing items from a producer to a consumer.
type Queue[T any] interface {
	// Offer adds an item to the queue. Returns false if full.
	Offer(item T) bool
	// Poll removes the oldest item. Returns the item and true, or zero and false if empty.
	Poll() (T, bool)
	// Len returns the number of queued items.
	Len() int
	// Close marks the queue as closed.
	Close()
	// IsClosed returns true if the queue is closed and empty.
	IsClosed() bool
}

// RingBuffer is a lock-free Single-Producer Single-Consumer (SPSC) queue.
// The terminal backend uses it to pass events from its reader goroutine to the
// run loop; the Buffer operator uses it single-threaded as window storage.
// It is NOT safe for multiple producers or multiple consumers.
type RingBuffer[T any] struct {
	// Cache line padding to prevent false sharing
	_padding0 [8]uint64
	head      uint64
	_padding1 [8]uint64
	tail      uint64
	_padding2 [8]uint64
	mask      uint64
	buffer    []T
	closed    int32
}

// NewRingBuffer creates a new SPSC RingBuffer that holds at least capacity items.
// Capacity is rounded up to the next power of 2.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 2 {
		capacity = 2
	}
	// See: https://graphics.stanford.edu/~seander/bithacks.html#RoundUpPowerOf2
	capacity--
	capacity |= capacity >> 1
	capacity |= capacity >> 2
	capacity |= capacity >> 4
	capacity |= capacity >> 8
	capacity |= capacity >> 16
	capacity++

	return &RingBuffer[T]{
		buffer: make([]T, capacity),
		mask:   uint64(capacity - 1),
	}
}

// Cap returns the rounded capacity.
func (rb *RingBuffer[T]) Cap() int {
	return len(rb.buffer)
}

// Len returns the number of items currently queued.
func (rb *RingBuffer[T]) Len() int {
	return int(atomic.LoadUint64(&rb.tail) - atomic.LoadUint64(&rb.head))
}

// Offer adds an item to the queue.
// Returns false if the queue is full.
// Only safe for a single producer.
func (rb *RingBuffer[T]) Offer(item T) bool {
	tail := atomic.LoadUint64(&rb.tail)
	head := atomic.LoadUint64(&rb.head)

	if tail-head > rb.mask {
		return false // Full
	}

	rb.buffer[tail&rb.mask] = item
	atomic.StoreUint64(&rb.tail, tail+1)
	return true
}

// Poll removes an item from the queue.
// Returns false if the queue is empty.
// Only safe for a single consumer.
func (rb *RingBuffer[T]) Poll() (T, bool) {
	head := atomic.LoadUint64(&rb.head)
	tail := atomic.LoadUint64(&rb.tail)

	var zero T
	if head == tail {
		return zero, false
	}

	item := rb.buffer[head&rb.mask]
	rb.buffer[head&rb.mask] = zero // let the GC reclaim pointers

	atomic.StoreUint64(&rb.head, head+1)
	return item, true
}

// Snapshot copies the queued items, oldest first, without removing them.
// Only safe from the consumer side.
func (rb *RingBuffer[T]) Snapshot() []T {
	head := atomic.LoadUint64(&rb.head)
	tail := atomic.LoadUint64(&rb.tail)

	out := make([]T, 0, tail-head)
	for i := head; i != tail; i++ {
		out = append(out, rb.buffer[i&rb.mask])
	}
	return out
}

func (rb *RingBuffer[T]) Close() {
	atomic.StoreInt32(&rb.closed, 1)
}

func (rb *RingBuffer[T]) IsClosed() bool {
	return atomic.LoadInt32(&rb.closed) == 1 && atomic.LoadUint64(&rb.head) == atomic.LoadUint64(&rb.tail)
}

// SpinPoll polls the queue, yielding between attempts, before giving up.
func (rb *RingBuffer[T]) SpinPoll(spins int) (T, bool) {
	for i := 0; i < spins; i++ {
		if item, ok := rb.Poll(); ok {
			return item, true
		}
		runtime.Gosched()
	}
	var zero T
	return zero, false
}
