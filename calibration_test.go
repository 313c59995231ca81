package hyperprobe

import (
	"sync"
	"testing"
	"time"
)

func TestEnsureCalibrated_ConcurrentCallersSingleWinner(t *testing.T) {
	const callers = 8

	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()
			EnsureCalibrated(5 * time.Millisecond)
		}()
	}

	wg.Wait()

	if Frequency() == 0 {
		t.Fatal("frequency = 0 after calibration")
	}
}

func TestEnsureCalibrated_Idempotent(t *testing.T) {
	EnsureCalibrated(5 * time.Millisecond)
	first := Frequency()

	// losers return immediately and must not overwrite the scalar
	start := time.Now()
	EnsureCalibrated(time.Second)

	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("second EnsureCalibrated blocked for %s, want immediate return", elapsed)
	}

	if got := Frequency(); got != first {
		t.Errorf("frequency changed from %d to %d after repeat calibration", first, got)
	}
}
