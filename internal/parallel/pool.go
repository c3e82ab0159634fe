// Package parallel runs independent per-frame jobs on a fixed set of
// goroutines.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrPoolClosed is returned by RunIndexed when the pool stops accepting
// work before every job ran.
var ErrPoolClosed = errors.New("parallel: pool closed")

// errSkipped marks a job that never ran because an earlier one failed.
var errSkipped = errors.New("parallel: job skipped")

// WorkerPool is a pool of goroutines executing submitted work.
//
// Workers are started by NewWorkerPool and stopped by Close. Work submitted
// through ExecuteAll or RunIndexed is spread across all workers.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*2),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			p.drain()
			return
		case work := <-p.queue:
			work()
		}
	}
}

// drain runs whatever is still queued.
func (p *WorkerPool) drain() {
	for {
		select {
		case work := <-p.queue:
			work()
		default:
			return
		}
	}
}

// ExecuteAll runs every item and waits for all of them to finish.
// If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 || !p.isRunning() {
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))

	for i, fn := range work {
		wrapped := func() {
			defer wg.Done()
			fn()
		}
		select {
		case p.queue <- wrapped:
		case <-p.done:
			// Closed mid-submit: drop the rest.
			wg.Add(-(len(work) - i))
			wg.Wait()
			return
		}
	}

	wg.Wait()
}

// RunIndexed calls fn(0) .. fn(n-1) on the pool and waits for completion.
//
// Once any call fails, calls that have not started yet are skipped; calls
// already running finish normally. The returned error is the one with the
// lowest index, so a single worker reproduces sequential behavior exactly.
// If ctx is canceled before a call starts, that call is skipped and ctx.Err()
// is returned when no call failed. A closed pool runs nothing and returns
// ErrPoolClosed.
func (p *WorkerPool) RunIndexed(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if !p.isRunning() {
		return ErrPoolClosed
	}

	// Every slot starts as ErrPoolClosed; a job that runs overwrites it.
	errs := make([]error, n)
	for i := range errs {
		errs[i] = ErrPoolClosed
	}
	var failed atomic.Bool

	work := make([]func(), n)
	for i := range work {
		work[i] = func() {
			if failed.Load() || ctx.Err() != nil {
				errs[i] = errSkipped
				return
			}
			errs[i] = fn(i)
			if errs[i] != nil {
				failed.Store(true)
			}
		}
	}
	p.ExecuteAll(work)

	for _, err := range errs {
		if err != nil && !errors.Is(err, errSkipped) {
			return err
		}
	}
	return ctx.Err()
}

// Close stops all workers after queued work completes.
// Close is safe to call multiple times but must not race with ExecuteAll.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
	p.drain()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// isRunning reports whether the pool still accepts work.
func (p *WorkerPool) isRunning() bool {
	return p.running.Load()
}
