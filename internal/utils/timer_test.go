package utils

import (
	"testing"
	"time"
)

// TestTimer verifies that a Timer captures a plausible elapsed duration and
// that GetDuration is zero before Stop is called.
func TestTimer(t *testing.T) {
	timer := NewTimer()

	if got := timer.GetDuration(); got != 0 {
		t.Errorf("GetDuration() before Stop: got %v, want 0", got)
	}

	time.Sleep(10 * time.Millisecond)
	timer.Stop()

	if got := timer.GetDuration(); got < 10*time.Millisecond {
		t.Errorf("GetDuration(): got %v, want >= 10ms", got)
	}
}

// TestTimer_Restart verifies that Start resets the measurement window.
func TestTimer_Restart(t *testing.T) {
	timer := NewTimer()
	time.Sleep(50 * time.Millisecond)

	timer.Start()
	time.Sleep(5 * time.Millisecond)
	timer.Stop()

	got := timer.GetDuration()
	if got < 5*time.Millisecond {
		t.Errorf("GetDuration(): got %v, want >= 5ms", got)
	}
	if got >= 50*time.Millisecond {
		t.Errorf("GetDuration(): got %v, want well under the pre-Start sleep", got)
	}
}
