package export

import (
	"sync"
)

// JobFunc is a delivery job executed by the sink worker pool.
type JobFunc func() error

// WorkerPool executes sink deliveries concurrently so one slow sink does
// not serialize an export run.
type WorkerPool struct {
	workers   int
	jobs      chan JobFunc
	wg        sync.WaitGroup
	errorChan chan error
}

// NewWorkerPool creates a new worker pool with the given number of workers.
func NewWorkerPool(workers int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}

	pool := &WorkerPool{
		workers:   workers,
		jobs:      make(chan JobFunc, workers),
		errorChan: make(chan error, workers),
	}
	pool.start()

	return pool
}

func (pool *WorkerPool) start() {
	for range pool.workers {
		go func() {
			for job := range pool.jobs {
				err := job()
				if err != nil {
					// drop the error if nobody is draining the channel
					select {
					case pool.errorChan <- err:
					default:
					}
				}

				pool.wg.Done()
			}
		}()
	}
}

// Enqueue adds a delivery job to the worker pool.
func (pool *WorkerPool) Enqueue(job JobFunc) {
	pool.wg.Add(1)

	pool.jobs <- job
}

// Shutdown shuts down the worker pool. It waits for all jobs to finish.
func (pool *WorkerPool) Shutdown() {
	pool.wg.Wait()
	close(pool.jobs)
	close(pool.errorChan)
}

// Errors returns a channel that can be used to receive errors from the worker pool.
func (pool *WorkerPool) Errors() <-chan error {
	return pool.errorChan
}
