package trail

// EventSource supplies pending environment events.
type EventSource interface {
	// PollOne returns the next pending event, or false if none is queued right now.
	PollOne() (RawEvent, bool)
}

// Renderer draws one frame. It must not keep Frame.Trail after returning.
type Renderer interface {
	Render(frame Frame)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(Frame)

func (f RendererFunc) Render(frame Frame) { f(frame) }

// EventSourceFunc adapts a function to the EventSource interface.
type EventSourceFunc func() (RawEvent, bool)

func (f EventSourceFunc) PollOne() (RawEvent, bool) { return f() }
