package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a reusable set of long-lived worker goroutines dispatched in
// fork-join fashion, once per frame.
//
// Each worker owns a private queue and never takes work from another
// worker's queue: tasks are bound to disjoint output ranges before
// dispatch, so redistribution would add synchronization without adding
// safety. The join barrier in Dispatch is the only ordering primitive —
// after Dispatch returns, everything the tasks wrote is visible to the
// caller.
//
// Thread safety: Pool is safe for concurrent use, but callers that share
// an output buffer must not overlap Dispatch calls against it.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds the per-worker task queues.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit on Close.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The workers start immediately and wait for dispatch.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}

	for i := 0; i < workers; i++ {
		p.queues[i] = make(chan func(), 1)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
// It only ever pulls from its own queue.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			// Run whatever was queued before the close so a concurrent
			// Dispatch never blocks on its join.
			p.drain(p.queues[id])
			return
		case task := <-p.queues[id]:
			if task != nil {
				task()
			}
		}
	}
}

// drain executes all remaining tasks in a queue.
func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			if task != nil {
				task()
			}
		default:
			return
		}
	}
}

// Dispatch forks the tasks across the workers and blocks until every task
// has completed (the join barrier). Task i runs on worker i%workers;
// passing at most Workers() tasks gives each worker at most one task and
// no queuing delay. If the pool is closed, Dispatch is a no-op.
func (p *Pool) Dispatch(tasks []func()) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}

	var join sync.WaitGroup
	join.Add(len(tasks))

	for i, fn := range tasks {
		id := i % p.workers
		task := fn

		wrapped := func() {
			defer join.Done()
			task()
		}

		select {
		case p.queues[id] <- wrapped:
		case <-p.done:
			// Pool is closing; the task will not run.
			join.Done()
		}
	}

	join.Wait()
}

// Close shuts down the pool and waits for all workers to exit.
// Close is safe to call multiple times. The pool must not be dispatched
// after Close.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
