package maintenance

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingTarget struct {
	gc, evict, sweep atomic.Int32
	idle             atomic.Int64
	gcErr            error
}

func (c *countingTarget) CollectGarbage(float64) error { c.gc.Add(1); return c.gcErr }
func (c *countingTarget) Evict() int                   { c.evict.Add(1); return 1 }
func (c *countingTarget) Sweep(idle time.Duration) int {
	c.sweep.Add(1)
	c.idle.Store(int64(idle))
	return 0
}

func TestStartRunsTasksUntilCancelled(t *testing.T) {
	target := &countingTarget{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Start(ctx, Targets{Storage: target, Cache: target, Sessions: target}, Config{
			StorageGCInterval:    5 * time.Millisecond,
			CacheSweepInterval:   5 * time.Millisecond,
			SessionSweepInterval: 5 * time.Millisecond,
			SessionIdleTimeout:   time.Hour,
		}, nil)
		close(done)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for target.gc.Load() == 0 || target.evict.Load() == 0 || target.sweep.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("tasks did not run: gc=%d evict=%d sweep=%d", target.gc.Load(), target.evict.Load(), target.sweep.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}
	if time.Duration(target.idle.Load()) != time.Hour {
		t.Errorf("sweep idle = %v", time.Duration(target.idle.Load()))
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestStartSkipsDisabledTasks(t *testing.T) {
	target := &countingTarget{}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	Start(ctx, Targets{Cache: target}, Config{StorageGCInterval: time.Millisecond, CacheSweepInterval: 0}, nil)
	if target.gc.Load() != 0 || target.evict.Load() != 0 {
		t.Errorf("disabled tasks ran: gc=%d evict=%d", target.gc.Load(), target.evict.Load())
	}
}

func TestCompact(t *testing.T) {
	target := &countingTarget{}
	if err := Compact(target, nil); err != nil || target.gc.Load() != 1 {
		t.Fatalf("Compact = %v, calls %d", err, target.gc.Load())
	}
	target.gcErr = errors.New("disk full")
	if err := Compact(target, nil); err == nil {
		t.Error("expected wrapped error")
	}
}
