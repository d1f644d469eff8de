package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBuffer_SPSC(t *testing.T) {
	rb := NewRingBuffer[int](1024)
	count := 100_000

	var wg sync.WaitGroup
	wg.Add(2)

	// Producer
	go func() {
		defer wg.Done()
		for i := 0; i < count; i++ {
			for !rb.Offer(i) {
				// Spin wait
			}
		}
		rb.Close()
	}()

	// Consumer
	received := 0
	go func() {
		defer wg.Done()
		for {
			val, ok := rb.Poll()
			if !ok {
				if rb.IsClosed() {
					break
				}
				continue
			}
			if val != received {
				t.Errorf("Expected %d, got %d", received, val)
			}
			received++
		}
	}()

	wg.Wait()
	assert.Equal(t, count, received)
}

func TestRingBuffer_Capacity(t *testing.T) {
	rb := NewRingBuffer[int](3) // Rounds up to 4
	require.Equal(t, 4, rb.Cap())

	for i := 1; i <= 4; i++ {
		require.True(t, rb.Offer(i), "offer %d", i)
	}
	assert.False(t, rb.Offer(5), "should be full")
	assert.Equal(t, 4, rb.Len())

	val, ok := rb.Poll()
	require.True(t, ok)
	assert.Equal(t, 1, val)

	assert.True(t, rb.Offer(5), "offer after poll")
	assert.Equal(t, []int{2, 3, 4, 5}, rb.Snapshot())
}

func TestRingBuffer_SnapshotDoesNotConsume(t *testing.T) {
	rb := NewRingBuffer[string](8)
	assert.Empty(t, rb.Snapshot())

	rb.Offer("a")
	rb.Offer("b")

	snap := rb.Snapshot()
	assert.Equal(t, []string{"a", "b"}, snap)
	assert.Equal(t, 2, rb.Len())

	// The snapshot is a copy.
	snap[0] = "z"
	v, _ := rb.Poll()
	assert.Equal(t, "a", v)
}

func TestRingBuffer_ClosedOnlyWhenDrained(t *testing.T) {
	rb := NewRingBuffer[int](2)
	rb.Offer(7)
	rb.Close()
	assert.False(t, rb.IsClosed())

	v, ok := rb.SpinPoll(3)
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.True(t, rb.IsClosed())

	_, ok = rb.SpinPoll(3)
	assert.False(t, ok)
}
