package stream

// ============================================================================
// BASE STREAM
// ============================================================================

type baseStream[T any] struct {
	self Stream[T]
}

func (s *baseStream[T]) Via(flow Flow[T, T]) Stream[T] {
	return flow.Apply(s.self)
}

// ============================================================================
// CONCRETE STAGES
// ============================================================================

type mappedStream[In, Out any] struct {
	baseStream[Out]
	parent Stream[In]
	mapper func(In) Out
}

func (s *mappedStream[In, Out]) Subscribe(obs Observer[Out]) *Subscription {
	return s.parent.Subscribe(&mapObserver[In, Out]{next: obs, mapper: s.mapper})
}

type mapObserver[In, Out any] struct {
	next   Observer[Out]
	mapper func(In) Out
}

func (o *mapObserver[In, Out]) OnNext(v In) { o.next.OnNext(o.mapper(v)) }
func (o *mapObserver[In, Out]) OnComplete() { o.next.OnComplete() }

type filteredStream[T any] struct {
	baseStream[T]
	parent    Stream[T]
	predicate func(T) bool
}

func (s *filteredStream[T]) Subscribe(obs Observer[T]) *Subscription {
	return s.parent.Subscribe(&filterObserver[T]{next: obs, predicate: s.predicate})
}

type filterObserver[T any] struct {
	next      Observer[T]
	predicate func(T) bool
}

func (o *filterObserver[T]) OnNext(v T) {
	if o.predicate(v) {
		o.next.OnNext(v)
	}
}

func (o *filterObserver[T]) OnComplete() { o.next.OnComplete() }

// ============================================================================
// FLOW IMPLEMENTATIONS
// ============================================================================

// Map creates a Flow that applies a function to each element.
func Map[In, Out any](f func(In) Out) Flow[In, Out] {
	return &mapFlow[In, Out]{mapper: f}
}

type mapFlow[In, Out any] struct {
	mapper func(In) Out
}

func (m *mapFlow[In, Out]) Apply(input Stream[In]) Stream[Out] {
	s := &mappedStream[In, Out]{
		parent: input,
		mapper: m.mapper,
	}
	s.self = s
	return s
}

// Filter creates a Flow that keeps elements satisfying the predicate.
func Filter[T any](predicate func(T) bool) Flow[T, T] {
	return &filterFlow[T]{predicate: predicate}
}

type filterFlow[T any] struct {
	predicate func(T) bool
}

func (f *filterFlow[T]) Apply(input Stream[T]) Stream[T] {
	s := &filteredStream[T]{
		parent:    input,
		predicate: f.predicate,
	}
	s.self = s
	return s
}

// Compose composes two flows: f1 then f2.
func Compose[A, B, C any](f1 Flow[A, B], f2 Flow[B, C]) Flow[A, C] {
	return &composedFlow[A, B, C]{f1: f1, f2: f2}
}

type composedFlow[A, B, C any] struct {
	f1 Flow[A, B]
	f2 Flow[B, C]
}

func (c *composedFlow[A, B, C]) Apply(input Stream[A]) Stream[C] {
	return c.f2.Apply(c.f1.Apply(input))
}
