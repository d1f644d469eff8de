package trail

import (
	"errors"
	"fmt"
	"log/slog"

	"go-rxtrail/pkg/stream"
)

// App wires an EventSource and a Renderer to the trail pipelines.
// Construction only describes the pipelines; Run executes them.
type App struct {
	cfg      Config
	state    *State
	renderer Renderer
	events   *stream.Multicast[RawEvent]
	subs     []*stream.Subscription
	logger   *slog.Logger
	frames   int
}

// New builds the event stream and registers the pipelines.
// It fails with an InitializationError if src or r is missing.
func New(src EventSource, r Renderer, opts ...Option) (*App, error) {
	if src == nil {
		return nil, NewInitializationError("event source", errors.New("nil EventSource"))
	}
	if r == nil {
		return nil, NewInitializationError("renderer", errors.New("nil Renderer"))
	}

	cfg := ApplyOptions(opts...)
	a := &App{
		cfg:      cfg,
		state:    NewState(cfg.IdleColor),
		renderer: r,
		logger:   cfg.Logger,
	}

	a.events = stream.Publish(
		FrameEvents(src, a.render, a.state),
		stream.WithLogger(cfg.Logger),
	)
	a.subscribe()
	return a, nil
}

func (a *App) subscribe() {
	events := a.events
	st := a.state

	// Instrumentation sees every event first.
	if a.cfg.Metrics != nil {
		a.subs = append(a.subs, events.Subscribe(stream.OnNext(a.cfg.Metrics.observeEvent)))
	}

	// Quit: finish the current cycle, render once more, stop.
	a.subs = append(a.subs, events.
		Via(stream.Filter(isQuit)).
		Subscribe(stream.OnNext(func(RawEvent) {
			if !st.Quitting() {
				a.logger.Debug("quit requested", "frame", a.frames)
			}
			st.RequestQuit()
		})))

	// Left button down / up switch the trail colour.
	a.subs = append(a.subs, events.
		Via(stream.Filter(isLeftDown)).
		Subscribe(stream.OnNext(func(RawEvent) { st.SetColor(a.cfg.PressedColor) })))
	a.subs = append(a.subs, events.
		Via(stream.Filter(isLeftUp)).
		Subscribe(stream.OnNext(func(RawEvent) { st.SetColor(a.cfg.IdleColor) })))

	// Pointer positions, windowed into the trail.
	positions := stream.Compose(
		stream.Filter(isMotion),
		stream.Map(RawEvent.Point),
	).Apply(events)
	a.subs = append(a.subs, stream.Buffer[Point](a.cfg.TrailLength).
		Apply(positions).
		Subscribe(stream.ObserverFuncs[[]Point]{
			Next: func(window []Point) {
				st.SetTrail(window)
				a.cfg.Metrics.observeWindow(len(window))
			},
			Complete: func() {
				a.logger.Debug("trail pipeline completed", "points", len(st.Trail()))
			},
		}))
}

func (a *App) render() {
	a.frames++
	a.renderer.Render(a.state.Frame())
	a.cfg.Metrics.observeFrame()
}

// Run connects the event stream and blocks until a quit event has been handled.
// An App runs once; a second call returns stream.ErrAlreadyConnected.
func (a *App) Run() error {
	a.logger.Info("trail run starting",
		"trail_length", a.cfg.TrailLength,
		"pipelines", a.events.Subscribers())

	if err := a.events.Connect(); err != nil {
		return fmt.Errorf("connect event stream: %w", err)
	}

	a.logger.Info("trail run finished", "frames", a.frames)
	return nil
}

// Close disposes every pipeline subscription. It is safe to call more than once.
func (a *App) Close() {
	for _, sub := range a.subs {
		sub.Dispose()
	}
}

// State exposes the run's mutable context, mainly for tests and tooling.
func (a *App) State() *State { return a.state }

// Frames returns the number of frames rendered so far.
func (a *App) Frames() int { return a.frames }
