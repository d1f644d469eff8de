// Package term is a terminal backend for the trail app built on tcell.
//
// A Session owns a tcell.Screen. A reader goroutine translates screen events into
// trail.RawEvents and queues them; the run loop drains the queue through PollOne
// without ever blocking, and draws frames through Render.
package term
