package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferSlidingWindow(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
	}{
		{"fewer than size", 3, 5},
		{"exactly size", 4, 4},
		{"longer than size", 10, 3},
		{"size one", 4, 1},
		{"empty", 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items := make([]int, tc.n)
			for i := range items {
				items[i] = i + 1
			}

			sink := NewCollectorSink[[]int]()
			Buffer[int](tc.size).Apply(FromSlice(items...)).Subscribe(sink)

			windows := sink.Results()
			require.Len(t, windows, max(0, tc.n-tc.size+1))
			for k, w := range windows {
				require.Len(t, w, tc.size)
				for j, v := range w {
					assert.Equal(t, items[k+j], v, "window %d position %d", k, j)
				}
			}
			assert.Equal(t, 1, sink.Completions(), "completion passes through")
		})
	}
}

func TestBufferSnapshotsAreIndependent(t *testing.T) {
	sink := NewCollectorSink[[]int]()
	Buffer[int](2).Apply(FromSlice(1, 2, 3)).Subscribe(sink)

	windows := sink.Results()
	require.Len(t, windows, 2)
	windows[0][0] = 99
	assert.Equal(t, []int{2, 3}, windows[1])
}

func TestBufferStep(t *testing.T) {
	sink := NewCollectorSink[[]int]()
	Buffer[int](2, WithStep(2)).Apply(FromSlice(1, 2, 3, 4, 5, 6)).Subscribe(sink)

	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5, 6}}, sink.Results())
}

func TestBufferStateIsPerSubscription(t *testing.T) {
	windowed := Buffer[int](2).Apply(FromSlice(1, 2, 3))

	first := NewCollectorSink[[]int]()
	second := NewCollectorSink[[]int]()
	windowed.Subscribe(first)
	windowed.Subscribe(second)

	assert.Equal(t, first.Results(), second.Results())
	assert.Equal(t, [][]int{{1, 2}, {2, 3}}, second.Results())
}

func TestBufferRejectsEmptyWindow(t *testing.T) {
	assert.Panics(t, func() { Buffer[int](0) })
}

func TestWithStepIgnoresNonPositive(t *testing.T) {
	cfg := ApplyOptions(WithStep(0), WithStep(-3))
	assert.Equal(t, DefaultStep, cfg.Step)
	assert.NotNil(t, cfg.Logger)
}
