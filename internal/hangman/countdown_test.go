package hangman

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterval = 5 * time.Millisecond

func TestCountdown_Start(t *testing.T) {
	// Given: a countdown that records the round it fires for
	var fired atomic.Int32
	var lastRound atomic.Uint64
	countdown := NewCountdown(testInterval, func(round uint64) {
		lastRound.Store(round)
		fired.Add(1)
	})
	t.Cleanup(countdown.Stop)

	// When: it starts for round 7
	countdown.Start(7)

	// Then: it keeps firing for that round
	require.Eventually(t, func() bool { return fired.Load() >= 3 }, time.Second, time.Millisecond)
	assert.Equal(t, uint64(7), lastRound.Load())
}

func TestCountdown_Stop(t *testing.T) {
	t.Run("No ticks after stop", func(t *testing.T) {
		// Given: a running countdown
		var fired atomic.Int32
		countdown := NewCountdown(testInterval, func(uint64) { fired.Add(1) })
		countdown.Start(1)
		require.True(t, countdown.Pending())

		// When: it is stopped
		countdown.Stop()
		count := fired.Load()

		// Then: at most a callback already in flight lands afterwards
		time.Sleep(10 * testInterval)
		assert.LessOrEqual(t, fired.Load(), count+1)
		assert.False(t, countdown.Pending())
	})

	t.Run("Stop is idempotent", func(t *testing.T) {
		// Given: a countdown that was never started
		countdown := NewCountdown(testInterval, nil)

		// When/Then: stopping it repeatedly is harmless
		assert.NotPanics(t, func() {
			countdown.Stop()
			countdown.Stop()
			countdown.Start(1)
			countdown.Stop()
			countdown.Stop()
		})
	})

	t.Run("Stop from inside the callback", func(t *testing.T) {
		// Given: a countdown whose callback stops it, as an ending round does
		var fired atomic.Int32
		var countdown *Countdown
		countdown = NewCountdown(testInterval, func(uint64) {
			fired.Add(1)
			countdown.Stop()
		})

		// When: it starts
		countdown.Start(1)

		// Then: it fires once and does not reschedule
		require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
		time.Sleep(10 * testInterval)
		assert.Equal(t, int32(1), fired.Load())
		assert.False(t, countdown.Pending())
	})
}

func TestCountdown_Restart(t *testing.T) {
	// Given: a countdown running for round 1
	var lastRound atomic.Uint64
	countdown := NewCountdown(testInterval, func(round uint64) { lastRound.Store(round) })
	t.Cleanup(countdown.Stop)
	countdown.Start(1)

	// When: it restarts for round 2
	countdown.Start(2)

	// Then: ticks carry the new round
	require.Eventually(t, func() bool { return lastRound.Load() == 2 }, time.Second, time.Millisecond)
}
