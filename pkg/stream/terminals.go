package stream

// ============================================================================
// TERMINALS (SINKS / FOLDS)
// ============================================================================

// Reduce subscribes to s and folds every value into an accumulator.
// On a cold stream it returns once the stream completes. On a Multicast the fold
// only advances after Connect, so the returned value is the initial one; use a
// CollectorSink there instead.
//
// Parameters:
//   s: The stream to reduce.
//   init: The initial value of the accumulator.
//   fn: The reduction function that combines the accumulator and the next element.
//
// Returns:
//   Acc: The accumulated value at the time Subscribe returned.
func Reduce[T, Acc any](s Stream[T], init Acc, fn func(Acc, T) Acc) Acc {
	acc := init
	s.Subscribe(OnNext(func(v T) {
		acc = fn(acc, v)
	}))
	return acc
}

// CollectorSink is an Observer that records everything it receives.
// Useful for testing.
type CollectorSink[T any] struct {
	results   []T
	completed int
}

// NewCollectorSink creates an empty collector.
func NewCollectorSink[T any]() *CollectorSink[T] {
	return &CollectorSink[T]{}
}

func (s *CollectorSink[T]) OnNext(v T) {
	s.results = append(s.results, v)
}

func (s *CollectorSink[T]) OnComplete() {
	s.completed++
}

// Results returns a copy of the values received so far.
func (s *CollectorSink[T]) Results() []T {
	res := make([]T, len(s.results))
	copy(res, s.results)
	return res
}

// Completed reports whether OnComplete has been received.
func (s *CollectorSink[T]) Completed() bool {
	return s.completed > 0
}

// Completions returns how many times OnComplete was received.
func (s *CollectorSink[T]) Completions() int {
	return s.completed
}
