package stream

import (
	"errors"
	"log/slog"
	"slices"
)

// ErrAlreadyConnected is returned by Multicast.Connect when the multicast has
// already been connected. A multicast drives exactly one production run.
var ErrAlreadyConnected = errors.New("stream: multicast already connected")

// ============================================================================
// FAN-OUT (MULTICAST)
// ============================================================================

type connState int

const (
	stateIdle connState = iota
	stateConnected
	stateFinished
)

// Multicast shares a single run of a cold stream with every registered observer.
// Nothing is produced until Connect is called.
//
// A Multicast is itself a Stream: operators applied to it subscribe through it,
// so a chain such as Filter(...).Apply(m) registers with m when subscribed.
//
// Multicast is not safe for concurrent use. Observers run synchronously on the
// goroutine that called Connect, in registration order.
type Multicast[T any] struct {
	baseStream[T]
	source    Stream[T]
	observers []*registration[T]
	state     connState
	logger    *slog.Logger
}

type registration[T any] struct {
	obs Observer[T]
	sub *Subscription
}

// Publish wraps a cold stream in a Multicast. The result is not connected and
// has no observers.
func Publish[T any](source Stream[T], opts ...Option) *Multicast[T] {
	cfg := ApplyOptions(opts...)
	m := &Multicast[T]{
		source: source,
		logger: cfg.Logger,
	}
	m.self = m
	return m
}

// Subscribe registers obs at the end of the observer list.
// Registration is valid before or after Connect; values produced before the
// registration are not replayed. Subscribing to a finished multicast completes
// obs immediately and returns a disposed subscription.
func (m *Multicast[T]) Subscribe(obs Observer[T]) *Subscription {
	if m.state == stateFinished {
		obs.OnComplete()
		sub := newSubscription(nil)
		sub.release()
		return sub
	}

	reg := &registration[T]{obs: obs}
	reg.sub = newSubscription(func() { m.remove(reg) })
	m.observers = append(m.observers, reg)
	return reg.sub
}

func (m *Multicast[T]) remove(reg *registration[T]) {
	m.observers = slices.DeleteFunc(m.observers, func(r *registration[T]) bool {
		return r == reg
	})
	m.logger.Debug("multicast observer disposed",
		"subscription", reg.sub.ID(),
		"remaining", len(m.observers))
}

// Connect runs the underlying stream and fans its values out to the observers.
// It blocks until the production function returns. Calling Connect a second
// time returns ErrAlreadyConnected.
func (m *Multicast[T]) Connect() error {
	if m.state != stateIdle {
		return ErrAlreadyConnected
	}
	m.state = stateConnected
	m.logger.Debug("multicast connecting", "observers", len(m.observers))

	m.source.Subscribe(&fanOut[T]{m: m})
	return nil
}

// Subscribers returns the number of live registrations.
func (m *Multicast[T]) Subscribers() int {
	return len(m.observers)
}

// Connected reports whether Connect has been called.
func (m *Multicast[T]) Connected() bool {
	return m.state != stateIdle
}

// Finished reports whether the underlying stream has completed.
func (m *Multicast[T]) Finished() bool {
	return m.state == stateFinished
}

// fanOut is the internal sink the source pushes into.
type fanOut[T any] struct {
	m *Multicast[T]
}

func (f *fanOut[T]) OnNext(v T) {
	// Iterate a copy: observers may subscribe or dispose while we deliver.
	for _, reg := range slices.Clone(f.m.observers) {
		if reg.sub.Disposed() {
			continue
		}
		reg.obs.OnNext(v)
	}
}

func (f *fanOut[T]) OnComplete() {
	m := f.m
	if m.state == stateFinished {
		return
	}
	observers := m.observers
	m.observers = nil
	m.state = stateFinished

	for _, reg := range observers {
		if reg.sub.Disposed() {
			continue
		}
		reg.sub.release()
		reg.obs.OnComplete()
	}
	m.logger.Debug("multicast completed", "observers", len(observers))
}
