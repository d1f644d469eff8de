package stream

// ============================================================================
// SOURCE OPERATORS
// ============================================================================

type sourceStream[T any] struct {
	baseStream[T]
	generator func(Emitter[T])
}

// FromGenerator creates a cold stream from a production function.
// The generator receives an Emitter to push values and signal completion.
// Nothing runs until the stream is subscribed; every subscription runs the
// generator again, synchronously, on the caller's goroutine.
//
// Parameters:
//   gen: The production function.
//
// Returns:
//   Stream[T]: A new cold stream.
func FromGenerator[T any](gen func(Emitter[T])) Stream[T] {
	s := &sourceStream[T]{
		generator: gen,
	}
	s.self = s
	return s
}

// FromSlice creates a finite cold stream that emits items in order and completes.
func FromSlice[T any](items ...T) Stream[T] {
	return FromGenerator(func(e Emitter[T]) {
		for _, item := range items {
			e.Emit(item)
		}
		e.Complete()
	})
}

func (s *sourceStream[T]) Subscribe(obs Observer[T]) *Subscription {
	sub := newSubscription(nil)
	s.generator(&emitter[T]{obs: obs, sub: sub})
	return sub
}

// emitter guards an observer against a misbehaving producer:
// nothing is delivered after completion or disposal.
type emitter[T any] struct {
	obs  Observer[T]
	sub  *Subscription
	done bool
}

func (e *emitter[T]) Emit(value T) {
	if e.done || e.sub.Disposed() {
		return
	}
	e.obs.OnNext(value)
}

func (e *emitter[T]) Complete() {
	if e.done {
		return
	}
	e.done = true
	if !e.sub.Disposed() {
		e.obs.OnComplete()
	}
	e.sub.release()
}
