package trail

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments a trail run.
type Metrics struct {
	Events      *prometheus.CounterVec
	Frames      prometheus.Counter
	Windows     prometheus.Counter
	TrailPoints prometheus.Gauge
}

// NewMetrics creates the trail metrics and registers them with reg.
// A nil reg leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trail",
			Name:      "events_total",
			Help:      "Raw events delivered to the event stream, by kind.",
		}, []string{"kind"}),
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trail",
			Name:      "frames_total",
			Help:      "Frames rendered.",
		}),
		Windows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trail",
			Name:      "windows_total",
			Help:      "Completed position windows applied to the trail.",
		}),
		TrailPoints: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "trail",
			Name:      "points",
			Help:      "Points currently in the trail.",
		}),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Events, m.Frames, m.Windows, m.TrailPoints} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register trail metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) observeEvent(ev RawEvent) {
	if m == nil {
		return
	}
	m.Events.WithLabelValues(ev.Kind.String()).Inc()
}

func (m *Metrics) observeFrame() {
	if m == nil {
		return
	}
	m.Frames.Inc()
}

func (m *Metrics) observeWindow(points int) {
	if m == nil {
		return
	}
	m.Windows.Inc()
	m.TrailPoints.Set(float64(points))
}
