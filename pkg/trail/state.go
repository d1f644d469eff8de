package trail

// Color is an RGB trail colour.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
)

// Frame is what a Renderer receives once per cycle.
type Frame struct {
	Trail []Point
	Color Color
}

// State is the mutable context owned by one run. The run loop reads it and the
// subscriber callbacks write it, all on the same goroutine.
type State struct {
	quit  bool
	trail []Point
	color Color
}

// NewState returns a state with an empty trail and the given colour.
func NewState(c Color) *State {
	return &State{color: c}
}

// RequestQuit sets the termination flag. It never resets.
func (s *State) RequestQuit() { s.quit = true }

// Quitting reports whether a quit has been requested.
func (s *State) Quitting() bool { return s.quit }

// SetTrail replaces the trail wholesale.
func (s *State) SetTrail(points []Point) { s.trail = points }

// Trail returns the current trail, oldest point first.
func (s *State) Trail() []Point { return s.trail }

// SetColor changes the colour used for the next frame.
func (s *State) SetColor(c Color) { s.color = c }

// Color returns the current trail colour.
func (s *State) Color() Color { return s.color }

// Frame captures what should be drawn now.
func (s *State) Frame() Frame {
	return Frame{Trail: s.trail, Color: s.color}
}
