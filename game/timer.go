package game

import "time"

// Timer accumulates simulated time handed to it by the caller. It never reads
// the wall clock.
type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTime: 0,
		targetTime:  target,
	}
}

// NewExpiredTimer returns a timer that is ready before any time has passed
func NewExpiredTimer(target time.Duration) *Timer {
	return &Timer{
		currentTime: target,
		targetTime:  target,
	}
}

func (t *Timer) Update(dt time.Duration) {
	t.currentTime += dt
}

func (t *Timer) IsReady() bool {
	return t.currentTime >= t.targetTime
}

func (t *Timer) Elapsed() time.Duration {
	return t.currentTime
}

func (t *Timer) Reset() {
	t.currentTime = 0
}

func (t *Timer) Expire() {
	t.currentTime = t.targetTime
}
