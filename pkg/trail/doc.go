// Package trail turns a poll-style event source into a published event stream
// and drives it from a single run loop.
//
// Each poll cycle drains every pending RawEvent into the stream, then renders one
// Frame. Independent pipelines subscribe to the stream: one watches for quit
// requests, two toggle the trail colour on left-button press and release, and one
// windows pointer positions into the trailing history that gets drawn.
//
//	src := ...     // EventSource
//	r := ...       // Renderer
//	app := trail.New(src, r, trail.WithTrailLength(100))
//	if err := app.Run(); err != nil { ... }
//
// Run blocks until a quit event has been seen and the final frame rendered.
package trail
