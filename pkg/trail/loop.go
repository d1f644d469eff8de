package trail

import "go-rxtrail/pkg/stream"

// FrameEvents builds the cold event stream that doubles as the run loop.
//
// When subscribed it repeats poll cycles until st.Quitting() is true. A cycle
// drains src until it reports nothing pending, emitting every event, then calls
// render exactly once. A quit raised by an observer mid-drain lets the drain and
// its render finish; no further cycle starts and the stream completes.
//
// There is no wait between cycles: a quiet source makes the loop spin.
func FrameEvents(src EventSource, render func(), st *State) stream.Stream[RawEvent] {
	return stream.FromGenerator(func(e stream.Emitter[RawEvent]) {
		for !st.Quitting() {
			for {
				ev, ok := src.PollOne()
				if !ok {
					break
				}
				e.Emit(ev)
			}
			render()
		}
		e.Complete()
	})
}
