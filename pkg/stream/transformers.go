package stream

import "go-rxtrail/pkg/stream/queue"

// ============================================================================
// WINDOWING OPERATORS
// ============================================================================

// Buffer creates a Flow that maintains a sliding window over the last size values.
//
// On every value the window appends it and drops the oldest surplus. Whenever the
// window holds exactly size values a copy of it (oldest first) is emitted, then
// again every step insertions (WithStep, default 1). The first size-1 values never
// produce an emission. Completion passes through unchanged, even if the window never
// filled. Window state belongs to the subscription, so each subscriber starts empty.
//
// Parameters:
//   size: The window length. Must be at least 1.
//   opts: WithStep controls the emission stride.
//
// Returns:
//   Flow[T, []T]: A flow from values to window snapshots.
func Buffer[T any](size int, opts ...Option) Flow[T, []T] {
	if size < 1 {
		panic("stream: Buffer size must be at least 1")
	}
	cfg := ApplyOptions(opts...)
	return &bufferFlow[T]{size: size, step: cfg.Step}
}

type bufferFlow[T any] struct {
	size int
	step int
}

func (f *bufferFlow[T]) Apply(input Stream[T]) Stream[[]T] {
	s := &bufferedStream[T]{
		parent: input,
		size:   f.size,
		step:   f.step,
	}
	s.self = s
	return s
}

type bufferedStream[T any] struct {
	baseStream[[]T]
	parent Stream[T]
	size   int
	step   int
}

func (s *bufferedStream[T]) Subscribe(obs Observer[[]T]) *Subscription {
	return s.parent.Subscribe(&windowObserver[T]{
		next:   obs,
		window: queue.NewRingBuffer[T](s.size),
		size:   s.size,
		step:   s.step,
	})
}

// windowObserver keeps at most size values in its ring. The ring's rounded
// capacity is never reached, so Offer cannot fail.
type windowObserver[T any] struct {
	next   Observer[[]T]
	window *queue.RingBuffer[T]
	size   int
	step   int
	seen   int
}

func (o *windowObserver[T]) OnNext(v T) {
	if o.window.Len() == o.size {
		o.window.Poll()
	}
	o.window.Offer(v)
	o.seen++

	if o.window.Len() == o.size && (o.seen-o.size)%o.step == 0 {
		o.next.OnNext(o.window.Snapshot())
	}
}

func (o *windowObserver[T]) OnComplete() { o.next.OnComplete() }
