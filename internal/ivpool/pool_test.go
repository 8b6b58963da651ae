package ivpool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsSubmittedTasks(t *testing.T) {
	pool := New(4)
	defer pool.Shutdown()

	ctx := context.Background()
	var completed int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			atomic.AddInt32(&completed, 1)
		}
		if err := pool.Submit(ctx, task); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}
	wg.Wait()

	if got := atomic.LoadInt32(&completed); got != 10 {
		t.Errorf("expected 10 completed tasks, got %d", got)
	}
}

func TestPoolSubmitAfterShutdownFails(t *testing.T) {
	pool := New(2)
	pool.Shutdown()

	if err := pool.Submit(context.Background(), func() {}); err != ErrPoolShutdown {
		t.Errorf("expected ErrPoolShutdown, got %v", err)
	}
}

func TestPoolSubmitRespectsContextCancellation(t *testing.T) {
	pool := New(1)
	defer pool.Shutdown()

	// Saturate the single worker and its two-slot queue (New's
	// taskChan capacity is maxWorkers*2) with tasks that block on busy,
	// so a further Submit has nowhere to go until busy closes.
	busy := make(chan struct{})
	for i := 0; i < 3; i++ {
		if err := pool.Submit(context.Background(), func() { <-busy }); err != nil {
			t.Fatalf("setup submit %d failed: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := pool.Submit(ctx, func() {})
	close(busy)

	if err != context.DeadlineExceeded {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestCertifyAllPreservesOrder(t *testing.T) {
	pool := New(4)
	defer pool.Shutdown()

	items := []int{1, 2, 3, 4, 5}
	out := CertifyAll(context.Background(), pool, items, func(x int) int { return x * x })

	want := []int{1, 4, 9, 16, 25}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}
