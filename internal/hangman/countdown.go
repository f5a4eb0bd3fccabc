package hangman

import (
	"sync"
	"time"
)

const DefaultTickInterval = time.Second

type taskState int

const (
	taskIdle taskState = iota
	taskPending
	taskFired
	taskCanceled
)

// Countdown - is a one-shot delayed callback that reschedules itself after every fire
// until stopped. The callback runs on a timer goroutine, so it should only hand the
// round number over to the event loop that owns the Engine.
type Countdown struct {
	mu       sync.Mutex
	interval time.Duration
	onTick   func(round uint64)

	timer *time.Timer
	state taskState
	round uint64
	gen   uint64
}

func NewCountdown(interval time.Duration, onTick func(round uint64)) *Countdown {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	return &Countdown{
		interval: interval,
		onTick:   onTick,
	}
}

// Start - cancels any pending tick and begins counting for round.
func (that *Countdown) Start(round uint64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cancelLocked()
	that.round = round
	that.scheduleLocked(that.gen)
}

// Stop - cancels the pending tick. Stopping twice, or after a fire, is a no-op.
func (that *Countdown) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cancelLocked()
}

func (that *Countdown) Pending() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state == taskPending
}

func (that *Countdown) cancelLocked() {
	if that.timer != nil {
		that.timer.Stop()
		that.timer = nil
	}

	if that.state == taskPending || that.state == taskFired {
		that.state = taskCanceled
	}

	// a callback already racing for the lock sees a stale generation and drops out
	that.gen++
}

func (that *Countdown) scheduleLocked(gen uint64) {
	that.state = taskPending
	that.timer = time.AfterFunc(that.interval, func() {
		that.fire(gen)
	})
}

func (that *Countdown) fire(gen uint64) {
	that.mu.Lock()
	if gen != that.gen || that.state != taskPending {
		that.mu.Unlock()
		return
	}

	that.state = taskFired
	round := that.round
	that.mu.Unlock()

	if that.onTick != nil {
		that.onTick(round)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if gen == that.gen && that.state == taskFired {
		that.scheduleLocked(gen)
	}
}
