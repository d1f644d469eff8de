package stream

import "testing"

func BenchmarkThroughput_Linear(b *testing.B) {
	// Pipeline: Generator -> Map -> Filter -> Sink
	gen := FromGenerator(func(e Emitter[int]) {
		for i := 0; i < b.N; i++ {
			e.Emit(i)
		}
		e.Complete()
	})
	pipeline := gen.Via(Compose(
		Map(func(i int) int { return i * 2 }),
		Filter(func(i int) bool { return true }),
	))

	b.ResetTimer()
	pipeline.Subscribe(OnNext(func(int) {}))
}

func BenchmarkBuffer(b *testing.B) {
	gen := FromGenerator(func(e Emitter[int]) {
		for i := 0; i < b.N; i++ {
			e.Emit(i)
		}
		e.Complete()
	})
	windows := Buffer[int](100).Apply(gen)

	b.ResetTimer()
	windows.Subscribe(OnNext(func([]int) {}))
}

func BenchmarkMulticastFanOut(b *testing.B) {
	gen := FromGenerator(func(e Emitter[int]) {
		for i := 0; i < b.N; i++ {
			e.Emit(i)
		}
		e.Complete()
	})
	m := Publish(gen)
	for i := 0; i < 4; i++ {
		m.Subscribe(OnNext(func(int) {}))
	}

	b.ResetTimer()
	if err := m.Connect(); err != nil {
		b.Fatalf("Connect failed: %v", err)
	}
}
