package retry_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/aspect/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ConfigValidation verifies that a defective configuration fails
// when the Policy is built, not when it runs.
func TestNew_ConfigValidation(t *testing.T) {
	_, err := retry.New(3, time.Millisecond, 1)
	assert.ErrorIs(t, err, retry.ErrBadFactor, "factor of exactly 1 is not a backoff")

	_, err = retry.New(3, time.Millisecond, 0.5)
	assert.ErrorIs(t, err, retry.ErrBadFactor)

	_, err = retry.New(-1, time.Millisecond, 2)
	assert.ErrorIs(t, err, retry.ErrBadTries)

	_, err = retry.New(3, 0, 2)
	assert.ErrorIs(t, err, retry.ErrBadDelay)

	_, err = retry.New(3, -time.Second, 2)
	assert.ErrorIs(t, err, retry.ErrBadDelay)

	_, err = retry.New(0, time.Millisecond, 2)
	assert.NoError(t, err, "zero tries is a valid single-shot policy")

	assert.Panics(t, func() { retry.MustNew(3, 0, 2) })
}

// TestDo_SucceedsOnThirdAttempt verifies the pinned behavior of
// retry(3, d, 2): false, false, true yields true after exactly three
// invocations and a cumulative wait of at least d + 2d.
func TestDo_SucceedsOnThirdAttempt(t *testing.T) {
	const d = 10 * time.Millisecond
	p := retry.MustNew(3, d, 2)

	calls := 0
	start := time.Now()
	ok := p.Do(func() bool {
		calls++

		return calls == 3
	})
	elapsed := time.Since(start)

	assert.True(t, ok)
	assert.Equal(t, 3, calls, "success on the third invocation stops the loop")
	assert.GreaterOrEqual(t, elapsed, 3*d, "waits must follow the ladder d + 2d")
}

// TestDo_ZeroTriesInvokesOnce verifies retry(0, d, 2) on an always-false
// callable: exactly one invocation, no waiting, false.
func TestDo_ZeroTriesInvokesOnce(t *testing.T) {
	p := retry.MustNew(0, 10*time.Millisecond, 2)

	calls := 0
	start := time.Now()
	ok := p.Do(func() bool {
		calls++

		return false
	})

	assert.False(t, ok)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), 10*time.Millisecond, "no attempts left means no backoff wait")
}

// TestDo_ImmediateSuccessSkipsBackoff verifies a first-call success never
// sleeps.
func TestDo_ImmediateSuccessSkipsBackoff(t *testing.T) {
	p := retry.MustNew(5, time.Second, 2)

	start := time.Now()
	ok := p.Do(func() bool { return true })

	assert.True(t, ok)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

// TestDo_ExhaustionReturnsFalse verifies the boolean exhaustion outcome
// and the exact invocation count: tries re-invocations after the first.
func TestDo_ExhaustionReturnsFalse(t *testing.T) {
	p := retry.MustNew(2, time.Millisecond, 2)

	calls := 0
	ok := p.Do(func() bool {
		calls++

		return false
	})

	assert.False(t, ok, "exhaustion is reported as false, never as an error")
	assert.Equal(t, 3, calls, "first call plus two re-invocations")
}

// TestWrap_AppliesPolicyPerCall verifies the wrapped callable reruns the
// full policy on each invocation.
func TestWrap_AppliesPolicyPerCall(t *testing.T) {
	p := retry.MustNew(1, time.Millisecond, 2)

	calls := 0
	wrapped := p.Wrap(func() bool {
		calls++

		return calls%2 == 0
	})

	require.True(t, wrapped(), "fails once, succeeds on the retry")
	assert.Equal(t, 2, calls)

	require.True(t, wrapped(), "the second wrapped call starts with a fresh attempt budget")
	assert.Equal(t, 4, calls)
}
