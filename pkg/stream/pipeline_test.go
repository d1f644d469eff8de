package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearPipeline(t *testing.T) {
	// 1. Source
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	source := FromSlice(items...)

	// 2. Map (Double)
	doubled := Map(func(i int) int { return i * 2 }).Apply(source)

	// 3. Filter (multiples of four)
	filtered := doubled.Via(Filter(func(i int) bool { return i%4 == 0 }))

	// 4. Run
	sink := NewCollectorSink[int]()
	sub := filtered.Subscribe(sink)

	// 5. Verify
	results := sink.Results()
	require.Len(t, results, 50)
	for i, v := range results {
		assert.Equal(t, i*4, v, "index %d", i)
	}
	assert.Equal(t, 1, sink.Completions())
	assert.True(t, sub.Disposed(), "subscription is inert once the cold run completes")
}

func TestStreamIsColdUntilSubscribed(t *testing.T) {
	runs := 0
	source := FromGenerator(func(e Emitter[string]) {
		runs++
		e.Emit("a")
		e.Complete()
	})

	upper := Map(func(s string) string { return s + "!" }).Apply(source)
	_ = upper.Via(Filter(func(string) bool { return true }))
	assert.Equal(t, 0, runs, "building operators must not run the producer")

	first := NewCollectorSink[string]()
	second := NewCollectorSink[string]()
	upper.Subscribe(first)
	upper.Subscribe(second)

	assert.Equal(t, 2, runs, "each subscription runs its own production")
	assert.Equal(t, []string{"a!"}, first.Results())
	assert.Equal(t, []string{"a!"}, second.Results())
}

func TestEmitterIgnoresValuesAfterCompletion(t *testing.T) {
	source := FromGenerator(func(e Emitter[int]) {
		e.Emit(1)
		e.Complete()
		e.Emit(2)
		e.Complete()
	})

	sink := NewCollectorSink[int]()
	source.Subscribe(sink)

	assert.Equal(t, []int{1}, sink.Results())
	assert.Equal(t, 1, sink.Completions())
}

func TestCompletionPassesThroughFilterAndMap(t *testing.T) {
	pipeline := Compose(
		Filter(func(int) bool { return false }),
		Map(func(i int) string { return "never" }),
	).Apply(FromSlice(1, 2, 3))

	sink := NewCollectorSink[string]()
	pipeline.Subscribe(sink)

	assert.Empty(t, sink.Results())
	assert.True(t, sink.Completed())
}

func TestReduce(t *testing.T) {
	sum := Reduce(FromSlice(1, 2, 3, 4), 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, 10, sum)
}

func TestObserverFuncsToleratesNilCallbacks(t *testing.T) {
	var got []int
	FromSlice(5, 6).Subscribe(ObserverFuncs[int]{Next: func(v int) { got = append(got, v) }})
	assert.Equal(t, []int{5, 6}, got)

	completed := false
	FromSlice(5).Subscribe(ObserverFuncs[int]{Complete: func() { completed = true }})
	assert.True(t, completed)
}
