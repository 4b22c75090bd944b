package game

import (
	"testing"
	"time"
)

func TestTimer(t *testing.T) {
	timer := NewTimer(350 * time.Millisecond)
	if timer.IsReady() {
		t.Fatal("new timer should not be ready")
	}

	timer.Update(200 * time.Millisecond)
	if timer.IsReady() {
		t.Error("timer ready too early")
	}
	timer.Update(150 * time.Millisecond)
	if !timer.IsReady() {
		t.Error("timer should be ready at its target")
	}
	if timer.Elapsed() != 350*time.Millisecond {
		t.Errorf("unexpected elapsed %v", timer.Elapsed())
	}

	timer.Reset()
	if timer.IsReady() || timer.Elapsed() != 0 {
		t.Error("reset should restart the timer")
	}

	timer.Expire()
	if !timer.IsReady() {
		t.Error("expired timer should be ready")
	}
}

func TestNewExpiredTimer(t *testing.T) {
	if !NewExpiredTimer(time.Second).IsReady() {
		t.Error("expired timer should start ready")
	}
}
