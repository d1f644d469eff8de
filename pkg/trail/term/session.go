package term

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"go-rxtrail/pkg/stream/queue"
	"go-rxtrail/pkg/trail"
)

// DefaultQueueSize bounds the events waiting between the reader goroutine and the run loop.
const DefaultQueueSize = 1024

// DefaultFrameInterval paces Render to roughly 60 frames per second.
const DefaultFrameInterval = time.Second / 60

// Config holds configuration for a Session.
type Config struct {
	QueueSize     int
	Glyph         rune
	FrameInterval time.Duration
	Logger        *slog.Logger
}

// Option is a functional option for configuring a Session.
type Option func(*Config)

// WithQueueSize sets the pending-event capacity. Non-positive values are ignored.
func WithQueueSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.QueueSize = n
		}
	}
}

// WithGlyph sets the rune used to draw the trail.
func WithGlyph(r rune) Option {
	return func(c *Config) {
		if r != 0 {
			c.Glyph = r
		}
	}
}

// WithFrameInterval sets the minimum time between two rendered frames.
// Zero disables pacing and lets the run loop spin freely.
func WithFrameInterval(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.FrameInterval = d
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// Session is a trail.EventSource and trail.Renderer backed by a tcell.Screen.
//
// PollOne and Render must be called from the run loop goroutine only.
type Session struct {
	screen  tcell.Screen
	pending *queue.RingBuffer[trail.RawEvent]
	glyph   rune
	logger  *slog.Logger

	interval  time.Duration
	nextFrame time.Time

	g      *errgroup.Group
	cancel context.CancelFunc
	once   sync.Once
	err    error
}

// NewScreen creates the platform terminal screen.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, trail.NewInitializationError("screen", err)
	}
	return s, nil
}

// Open initialises screen and starts reading its events.
// Failure to initialise is reported as a trail.InitializationError.
// Cancelling ctx queues a quit request for the run loop.
func Open(ctx context.Context, screen tcell.Screen, opts ...Option) (*Session, error) {
	cfg := Config{QueueSize: DefaultQueueSize, Glyph: '█', FrameInterval: DefaultFrameInterval}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if err := screen.Init(); err != nil {
		return nil, trail.NewInitializationError("screen", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	gctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(gctx)
	s := &Session{
		screen:  screen,
		pending: queue.NewRingBuffer[trail.RawEvent](cfg.QueueSize),
		glyph:   cfg.Glyph,
		logger:  cfg.Logger,
		g:       g,
		cancel:  cancel,

		interval: cfg.FrameInterval,
	}
	g.Go(func() error { return s.read(gctx) })
	g.Go(func() error {
		// Cancellation (signal or Close) reaches the run loop as a quit request.
		<-gctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	w, h := screen.Size()
	s.logger.Debug("terminal session opened", "width", w, "height", h)
	return s, nil
}

// read is the only producer of s.pending.
func (s *Session) read(ctx context.Context) error {
	defer s.pending.Close()

	var tr Translator
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalised. Make sure a still-running loop stops.
			s.offer(ctx, trail.Quit())
			return nil
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			s.screen.Sync()
			continue
		}
		for _, raw := range tr.Translate(ev) {
			if !s.offer(ctx, raw) {
				return nil
			}
		}
	}
}

// offer spins until raw is queued or ctx is done.
func (s *Session) offer(ctx context.Context, raw trail.RawEvent) bool {
	for !s.pending.Offer(raw) {
		if ctx.Err() != nil {
			return false
		}
		runtime.Gosched()
	}
	return true
}

// PollOne returns the next queued event without blocking.
func (s *Session) PollOne() (trail.RawEvent, bool) {
	return s.pending.Poll()
}

// Render clears the screen and draws the trail as connected segments.
// With a frame interval set it then waits out the rest of the frame.
func (s *Session) Render(frame trail.Frame) {
	s.screen.Clear()
	style := tcell.StyleDefault.Foreground(toTcell(frame.Color))

	plot := func(p trail.Point) {
		s.screen.SetContent(p.X, p.Y, s.glyph, nil, style)
	}
	switch len(frame.Trail) {
	case 0:
	case 1:
		plot(frame.Trail[0])
	default:
		for i := 0; i < len(frame.Trail)-1; i++ {
			line(frame.Trail[i], frame.Trail[i+1], plot)
		}
	}
	s.screen.Show()
	s.pace()
}

func (s *Session) pace() {
	if s.interval <= 0 {
		return
	}
	if d := time.Until(s.nextFrame); d > 0 {
		time.Sleep(d)
	}
	s.nextFrame = time.Now().Add(s.interval)
}

// Close stops the reader and restores the terminal. It is safe to call more than once.
func (s *Session) Close() error {
	s.once.Do(func() {
		s.cancel()
		s.screen.Fini()
		if err := s.g.Wait(); err != nil {
			s.err = fmt.Errorf("terminal reader: %w", err)
		}
		s.logger.Debug("terminal session closed")
	})
	return s.err
}

func toTcell(c trail.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// ParseColor resolves a colour name ("red", "#ff8800", ...) the way tcell does.
func ParseColor(name string) (trail.Color, error) {
	tc := tcell.GetColor(name)
	if tc == tcell.ColorDefault {
		return trail.Color{}, fmt.Errorf("unknown color %q", name)
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return trail.Color{}, fmt.Errorf("color %q has no RGB value", name)
	}
	return trail.Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
