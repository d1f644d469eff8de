package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComplexPipeline drives a multicast from an infinite-looking generator that
// stops once an observer flips a shared flag, the same shape the trail app uses.
func TestComplexPipeline(t *testing.T) {
	const stopAt = 50

	quit := false
	cycles := 0
	source := FromGenerator(func(e Emitter[int]) {
		n := 0
		for !quit {
			// One "cycle": a batch of three values.
			for i := 0; i < 3; i++ {
				n++
				e.Emit(n)
			}
			cycles++
		}
		e.Complete()
	})

	m := Publish(source)

	// Branch 1: stop switch.
	m.Via(Filter(func(i int) bool { return i == stopAt })).
		Subscribe(OnNext(func(int) { quit = true }))

	// Branch 2: squares of odd values.
	squares := NewCollectorSink[int]()
	Compose(
		Filter(func(i int) bool { return i%2 == 1 }),
		Map(func(i int) int { return i * i }),
	).Apply(m).Subscribe(squares)

	// Branch 3: trailing window over everything.
	windows := NewCollectorSink[[]int]()
	Buffer[int](4).Apply(m).Subscribe(windows)

	require.NoError(t, m.Connect())

	// The cycle containing stopAt (49, 50, 51) still finishes, then no new cycle starts.
	assert.Equal(t, 17, cycles)
	assert.True(t, squares.Completed())
	assert.True(t, windows.Completed())

	got := windows.Results()
	require.Len(t, got, 51-4+1)
	assert.Equal(t, []int{48, 49, 50, 51}, got[len(got)-1])

	sq := squares.Results()
	assert.Equal(t, 1, sq[0])
	assert.Equal(t, 51*51, sq[len(sq)-1])
}
