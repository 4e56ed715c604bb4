package testutil

import (
	"sync"
	"time"

	"github.com/elseano/nspin/pkg/ticker"
)

// FakeTime is a manually advanced clock which also schedules periodic
// callbacks. Callbacks only run inside Advance, on the caller's goroutine.
type FakeTime struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	owner   *FakeTime
	period  time.Duration
	next    time.Time
	fn      func()
	stopped bool
}

func NewFakeTime() *FakeTime {
	return &FakeTime{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (f *FakeTime) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

func (f *FakeTime) Every(d time.Duration, fn func()) ticker.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()

	t := &fakeTimer{owner: f, period: d, next: f.now.Add(d), fn: fn}
	f.timers = append(f.timers, t)
	return t
}

func (t *fakeTimer) Stop() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	t.stopped = true
}

// Advance moves time forward by d, firing due callbacks in time order.
func (f *FakeTime) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()

		var due *fakeTimer
		for _, t := range f.timers {
			if t.stopped || t.next.After(target) {
				continue
			}
			if due == nil || t.next.Before(due.next) {
				due = t
			}
		}

		if due == nil {
			f.now = target
			f.prune()
			f.mu.Unlock()
			return
		}

		f.now = due.next
		due.next = due.next.Add(due.period)
		fn := due.fn
		f.mu.Unlock()

		fn()
	}
}

// Pending is the number of callbacks still scheduled.
func (f *FakeTime) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prune()
	return len(f.timers)
}

func (f *FakeTime) prune() {
	live := f.timers[:0]
	for _, t := range f.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	f.timers = live
}
