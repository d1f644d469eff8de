package trail

// scriptedSource replays a fixed list of poll cycles. After the last cycle it
// reports nothing pending forever.
type scriptedSource struct {
	cycles [][]RawEvent
	cycle  int
	pos    int
	polls  int
}

func newScriptedSource(cycles ...[]RawEvent) *scriptedSource {
	return &scriptedSource{cycles: cycles}
}

func (s *scriptedSource) PollOne() (RawEvent, bool) {
	s.polls++
	if s.cycle >= len(s.cycles) {
		return RawEvent{}, false
	}
	cur := s.cycles[s.cycle]
	if s.pos < len(cur) {
		ev := cur[s.pos]
		s.pos++
		return ev, true
	}
	s.cycle++
	s.pos = 0
	return RawEvent{}, false
}

// cyclesConsumed counts the cycles whose end has been reported.
func (s *scriptedSource) cyclesConsumed() int { return s.cycle }

type frameRecorder struct {
	frames []Frame
}

func (r *frameRecorder) Render(f Frame) {
	// Copy: the renderer must not retain the caller's slice.
	f.Trail = append([]Point(nil), f.Trail...)
	r.frames = append(r.frames, f)
}
