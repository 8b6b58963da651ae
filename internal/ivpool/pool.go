// Package ivpool provides a fixed-size worker pool for fanning out
// independent box-certification tasks across the solution space found
// by a search driver (spec's "optionally certify each solution using the
// prover", SUPPLEMENTED FEATURES item 2). Adapted from
// internal/parallel.StaticWorkerPool: the scale-up/scale-down machinery
// of that package's WorkerPool is dropped here because a certification
// batch's size is known upfront (the solution count at search
// termination) rather than arriving as an open-ended stream.
package ivpool

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned when submitting to a pool that has already
// been shut down.
var ErrPoolShutdown = fmt.Errorf("ivpool: pool has been shut down")

// Pool runs a fixed number of worker goroutines draining a task channel.
type Pool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// New creates a pool with maxWorkers goroutines, defaulting to
// runtime.NumCPU() when maxWorkers <= 0.
func New(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	p := &Pool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*2),
		shutdownChan: make(chan struct{}),
	}
	for i := 0; i < maxWorkers; i++ {
		p.workerWg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.workerWg.Done()
	for {
		select {
		case task := <-p.taskChan:
			if task != nil {
				task()
			}
		case <-p.shutdownChan:
			return
		}
	}
}

// Submit enqueues task, blocking until a slot opens, ctx is canceled, or
// the pool is shut down.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	select {
	case <-p.shutdownChan:
		return ErrPoolShutdown
	default:
	}
	select {
	case p.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops accepting new tasks and waits for in-flight tasks to
// drain. Safe to call more than once.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdownChan)
		close(p.taskChan)
		p.workerWg.Wait()
	})
}

// Workers reports the fixed worker count.
func (p *Pool) Workers() int { return p.maxWorkers }

// CertifyAll runs fn once per item in items, fanned out across the pool,
// and returns the results in the same order as items (spec "certify each
// solution using the prover", run concurrently since certification of
// distinct solution boxes shares no mutable state). ctx must not be nil.
// When ctx is canceled, an item whose Submit fails is skipped and its
// result left zero-valued; CertifyAll still waits for every task that
// was submitted before returning.
func CertifyAll[T, R any](ctx context.Context, p *Pool, items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	var wg sync.WaitGroup
	wg.Add(len(items))
	for i, item := range items {
		i, item := i, item
		err := p.Submit(ctx, func() {
			defer wg.Done()
			out[i] = fn(item)
		})
		if err != nil {
			wg.Done()
		}
	}
	wg.Wait()
	return out
}
