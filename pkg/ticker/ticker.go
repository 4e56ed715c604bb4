// Package ticker runs periodic callbacks on their own goroutine.
package ticker

import (
	"context"
	"time"
)

// Handle cancels a scheduled callback.
type Handle interface {
	// Stop cancels future invocations. It does not wait for an invocation
	// already in flight, so it is safe to call while holding a lock the
	// callback also takes.
	Stop()
}

// Scheduler invokes fn every d until the returned Handle is stopped.
type Scheduler interface {
	Every(d time.Duration, fn func()) Handle
}

// Ticker is the Scheduler backed by time.Ticker.
type Ticker struct{}

// New returns the real-time scheduler.
func New() *Ticker {
	return &Ticker{}
}

func (Ticker) Every(d time.Duration, fn func()) Handle {
	ctx, cancel := context.WithCancel(context.Background())
	h := &handle{cancel: cancel, done: make(chan struct{})}

	go h.run(ctx, d, fn)

	return h
}

type handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (h *handle) run(ctx context.Context, d time.Duration, fn func()) {
	defer close(h.done)

	t := time.NewTicker(d)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			// A tick and a cancel can be ready together; cancellation wins.
			if ctx.Err() != nil {
				return
			}
			fn()
		}
	}
}

func (h *handle) Stop() {
	h.cancel()
}

// Wait blocks until the goroutine behind h has exited. Only meaningful after
// Stop, and only for handles created by Ticker.
func Wait(h Handle) {
	if hh, ok := h.(*handle); ok {
		<-hh.done
	}
}
