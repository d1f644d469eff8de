package stream

// ============================================================================
// OBSERVERS & EMITTERS
// ============================================================================

// Observer receives the values of a running stream.
// OnComplete is called at most once, after the last OnNext.
type Observer[T any] interface {
	OnNext(value T)
	OnComplete()
}

// ObserverFuncs adapts a pair of closures to the Observer interface.
// Either closure may be nil.
type ObserverFuncs[T any] struct {
	Next     func(T)
	Complete func()
}

func (o ObserverFuncs[T]) OnNext(value T) {
	if o.Next != nil {
		o.Next(value)
	}
}

func (o ObserverFuncs[T]) OnComplete() {
	if o.Complete != nil {
		o.Complete()
	}
}

// OnNext builds an Observer that only cares about values.
func OnNext[T any](fn func(T)) Observer[T] {
	return ObserverFuncs[T]{Next: fn}
}

// Emitter is the sink handed to a production function.
// A well-behaved producer emits zero or more values followed by exactly one Complete.
type Emitter[T any] interface {
	Emit(value T)
	Complete()
}

// ============================================================================
// BLUEPRINT INTERFACES (DEFINITION)
// ============================================================================

// Stream represents a source of data.
// It is a blueprint: nothing runs until something subscribes to it.
type Stream[T any] interface {
	// Via transforms this stream into another stream using a Flow.
	Via(flow Flow[T, T]) Stream[T]
	// Subscribe attaches an observer.
	// For a cold stream this runs the production function synchronously;
	// for a Multicast it only registers the observer.
	Subscribe(obs Observer[T]) *Subscription
}

// Flow represents a transformation stage (Map, Filter, Buffer or a composition of them).
type Flow[In, Out any] interface {
	// Apply wraps an input stream into an output stream. It does not run anything.
	Apply(input Stream[In]) Stream[Out]
}
