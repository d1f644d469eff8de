// Package stream provides a small, synchronous reactive stream toolkit.
//
// A Stream is a blueprint: building one with FromGenerator, Map, Filter or Buffer
// runs nothing. Subscribing to a cold stream runs its production function on the
// caller's goroutine. Publish wraps a cold stream in a Multicast so that a single
// production run is shared by every observer, and defers that run until Connect.
//
// Key features include:
//   - Generic, type-safe operators (Map, Filter, Buffer, Compose).
//   - Deferred activation and ordered fan-out (Publish / Connect).
//   - Cancellable subscriptions that are safe to dispose during delivery.
//
// Everything in this package is single-threaded: observers are invoked
// synchronously, one after another, so no locking is needed.
package stream
