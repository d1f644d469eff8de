package trail

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCountRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	src := newScriptedSource(
		[]RawEvent{Moved(1, 1), Moved(2, 2), Pressed(ButtonLeft, 2, 2)},
		[]RawEvent{Moved(3, 3), Released(ButtonLeft, 3, 3)},
		[]RawEvent{Quit()},
	)
	app, err := New(src, &frameRecorder{}, WithTrailLength(2), WithMetrics(m))
	require.NoError(t, err)
	require.NoError(t, app.Run())

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Events.WithLabelValues("pointer_moved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Events.WithLabelValues("button_down")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Events.WithLabelValues("button_up")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Events.WithLabelValues("quit")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Frames))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Windows))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TrailPoints))

	count, err := testutil.GatherAndCount(reg, "trail_frames_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetricsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
}

func TestNilMetricsAreIgnored(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeEvent(Quit())
		m.observeFrame()
		m.observeWindow(3)
	})
}
