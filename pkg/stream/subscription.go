package stream

import "github.com/google/uuid"

// Subscription is the handle a consumer keeps for one registration.
// Disposing it stops further deliveries; a disposed subscription is inert.
//
// Subscriptions are not safe for concurrent use. They are meant to be
// created and disposed from the goroutine that drives the stream.
type Subscription struct {
	id        uuid.UUID
	disposed  bool
	onDispose func()
}

func newSubscription(onDispose func()) *Subscription {
	return &Subscription{
		id:        uuid.New(),
		onDispose: onDispose,
	}
}

// ID identifies the subscription in logs.
func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// Dispose detaches the subscription. Calling it again has no effect.
func (s *Subscription) Dispose() {
	if s == nil || s.disposed {
		return
	}
	s.disposed = true
	if s.onDispose != nil {
		fn := s.onDispose
		s.onDispose = nil
		fn()
	}
}

// Disposed reports whether Dispose has been called or the stream has finished.
func (s *Subscription) Disposed() bool {
	return s == nil || s.disposed
}

// release marks the subscription inert without running the dispose hook.
// Used once the owning stream has completed.
func (s *Subscription) release() {
	s.disposed = true
	s.onDispose = nil
}
