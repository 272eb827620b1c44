package future_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/aspect/future"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandle_ResultBeforeCompletion verifies polling semantics: while the
// background call is still running, Done is false and Result fails with
// ErrNotYetDone instead of blocking.
func TestHandle_ResultBeforeCompletion(t *testing.T) {
	release := make(chan struct{})
	h := future.Start(func() int {
		<-release

		return 42
	})

	assert.False(t, h.Done())
	_, err := h.Result()
	assert.ErrorIs(t, err, future.ErrNotYetDone)

	close(release)
	assert.Equal(t, 42, h.Wait())
	assert.True(t, h.Done())
}

// TestHandle_ResultIsCachedOnce verifies the callable runs exactly once
// and repeated Result calls return the identical cached value.
func TestHandle_ResultIsCachedOnce(t *testing.T) {
	calls := 0
	h := future.Start(func() *[]string {
		calls++

		return &[]string{"a", "b"}
	})

	first := h.Wait()

	second, err := h.Result()
	require.NoError(t, err)
	third, err := h.Result()
	require.NoError(t, err)

	assert.Same(t, first, second, "second retrieval returns the cached value")
	assert.Same(t, first, third)
	assert.Equal(t, 1, calls, "the background work never relaunches")
}

// TestHandle_ConcurrentResult verifies many goroutines can poll the same
// handle after completion; exactly one touches the channel, all see the
// same value.
func TestHandle_ConcurrentResult(t *testing.T) {
	h := future.Start(func() int { return 7 })
	h.Wait()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := h.Result()
			assert.NoError(t, err)
			assert.Equal(t, 7, v)
		}()
	}
	wg.Wait()
}

// TestStart_IndependentHandles verifies each Start owns its own completion
// state: two handles never share results.
func TestStart_IndependentHandles(t *testing.T) {
	a := future.Start(func() string { return "a" })
	b := future.Start(func() string { return "b" })

	assert.Equal(t, "a", a.Wait())
	assert.Equal(t, "b", b.Wait())
}
