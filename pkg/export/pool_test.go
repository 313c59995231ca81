package export

import (
	"errors"
	"sync"
	"testing"
)

func TestWorkerPool_EnqueueAndShutdown(t *testing.T) {
	pool := NewWorkerPool(3)

	var mu sync.Mutex

	results := []int{}

	for i := range 5 {
		val := i
		pool.Enqueue(func() error {
			mu.Lock()

			results = append(results, val)

			mu.Unlock()

			return nil
		})
	}

	pool.Shutdown()

	if len(results) != 5 {
		t.Errorf("expected 5 results, got %d", len(results))
	}
}

func TestWorkerPool_JobErrorHandling(t *testing.T) {
	pool := NewWorkerPool(2)
	expectedErr := errors.New("job error")

	pool.Enqueue(func() error {
		return expectedErr
	})
	pool.Enqueue(func() error {
		return nil
	})

	pool.Shutdown()

	var gotErr error
	for err := range pool.Errors() {
		if errors.Is(err, expectedErr) {
			gotErr = err
		}
	}

	if gotErr == nil {
		t.Errorf("expected error to be received from Errors channel")
	}
}

func TestWorkerPool_MinimumOneWorker(t *testing.T) {
	pool := NewWorkerPool(0)

	done := false

	pool.Enqueue(func() error {
		done = true

		return nil
	})

	pool.Shutdown()

	if !done {
		t.Error("job did not run with clamped worker count")
	}
}
