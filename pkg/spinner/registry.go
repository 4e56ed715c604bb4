package spinner

import (
	"context"
	"os"
	"sync"

	"github.com/elseano/nspin/pkg/term"
	"github.com/elseano/nspin/pkg/ticker"
	"github.com/elseano/nspin/pkg/util"
	"github.com/thecodeteam/goodbye"
)

// ExitHook arranges for cleanup to run when the process exits.
type ExitHook func(cleanup func())

// GoodbyeHook runs cleanup from a goodbye handler. Handlers only fire when the
// program uses goodbye.Notify and goodbye.Exit.
func GoodbyeHook(cleanup func()) {
	goodbye.Register(func(ctx context.Context, sig os.Signal) {
		util.Debugf("Clearing spinners on exit (signal %v)", sig)
		cleanup()
	})
}

// Registry coordinates every spinner drawing on one console. It owns the
// vertical stacking order and serializes all spinner state changes and
// console writes behind a single lock.
type Registry struct {
	mu        sync.Mutex
	console   term.Console
	clock     Clock
	scheduler ticker.Scheduler
	hook      ExitHook
	hookOnce  sync.Once

	// slots are the console rows owned by spinners, oldest on top. A settled
	// slot is the row of a stopped spinner that still sits above the resting
	// cursor; live spinners above it must travel past it.
	slots []*slot
}

type slot struct {
	spinner *Spinner
	settled bool
}

type RegistryOption func(*Registry)

func WithClock(c Clock) RegistryOption {
	return func(r *Registry) { r.clock = c }
}

func WithScheduler(s ticker.Scheduler) RegistryOption {
	return func(r *Registry) { r.scheduler = s }
}

// WithExitHook replaces the goodbye exit hook. A nil hook disables exit
// cleanup.
func WithExitHook(h ExitHook) RegistryOption {
	return func(r *Registry) { r.hook = h }
}

// NewRegistry creates a registry drawing on console.
func NewRegistry(console term.Console, opts ...RegistryOption) *Registry {
	r := &Registry{
		console:   console,
		clock:     SystemClock(),
		scheduler: ticker.New(),
		hook:      GoodbyeHook,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// DefaultRegistry is the process-wide registry on standard output, used by
// spinners created without WithRegistry.
func DefaultRegistry() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry == nil {
		defaultRegistry = NewRegistry(term.Stdout())
	}

	return defaultRegistry
}

// SetDefaultRegistry replaces the process-wide registry and returns the
// previous one, so callers can restore it.
func SetDefaultRegistry(r *Registry) *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	prev := defaultRegistry
	defaultRegistry = r
	return prev
}

func (r *Registry) Console() term.Console {
	return r.console
}

// Register appends s to the bottom of the stack. Registering an active
// spinner again is a no-op.
func (r *Registry) Register(s *Spinner) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.register(s)
}

// Deregister removes s. It is a no-op when s isn't registered.
func (r *Registry) Deregister(s *Spinner) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deregister(s)
}

// Offset is the number of active spinners below s, or -1 when s isn't active.
func (r *Registry) Offset(s *Spinner) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.offset(s)
}

// Active returns the active spinners, oldest first.
func (r *Registry) Active() []*Spinner {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := make([]*Spinner, 0, len(r.slots))
	for _, sl := range r.slots {
		if !sl.settled {
			active = append(active, sl.spinner)
		}
	}

	return active
}

// Len is the number of active spinners.
func (r *Registry) Len() int {
	return len(r.Active())
}

// Shutdown cancels every live spinner and clears the rows they were drawn
// on. It runs from the exit hook, and is safe to call directly.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cursor, interactive := r.cursor()

	for i, sl := range r.slots {
		if sl.settled {
			continue
		}

		sl.spinner.cancel()
		sl.spinner.running = false
		sl.spinner.paused = false

		if interactive {
			rows := len(r.slots) - i
			cursor.MoveCursor(-rows)
			cursor.ClearLine()
			cursor.MoveCursor(rows)
		}
	}

	if interactive && len(r.slots) > 0 {
		cursor.ClearLine()
	}

	r.slots = nil
}

// Reset forgets every spinner without drawing anything. Timers are cancelled.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sl := range r.slots {
		if !sl.settled {
			sl.spinner.cancel()
			sl.spinner.running = false
			sl.spinner.paused = false
		}
	}

	r.slots = nil
}

func (r *Registry) register(s *Spinner) {
	if r.index(s) >= 0 {
		return
	}

	r.slots = append(r.slots, &slot{spinner: s})

	r.hookOnce.Do(func() {
		if r.hook != nil {
			r.hook(r.Shutdown)
		}
	})
}

func (r *Registry) deregister(s *Spinner) {
	i := r.index(s)
	if i < 0 {
		return
	}

	r.slots[i].settled = true

	// Rows above every live spinner no longer affect cursor travel.
	for len(r.slots) > 0 && r.slots[0].settled {
		r.slots = r.slots[1:]
	}
}

// index finds the active slot of s, or -1.
func (r *Registry) index(s *Spinner) int {
	for i, sl := range r.slots {
		if sl.spinner == s && !sl.settled {
			return i
		}
	}

	return -1
}

func (r *Registry) offset(s *Spinner) int {
	i := r.index(s)
	if i < 0 {
		return -1
	}

	below := 0
	for _, sl := range r.slots[i+1:] {
		if !sl.settled {
			below++
		}
	}

	return below
}

// rows is the number of console rows between s's row and the resting cursor,
// counting s's own row. It's -1 when s isn't active.
func (r *Registry) rows(s *Spinner) int {
	i := r.index(s)
	if i < 0 {
		return -1
	}

	return len(r.slots) - i
}

func (r *Registry) cursor() (term.Cursor, bool) {
	if !r.console.Interactive() {
		return nil, false
	}

	c, ok := r.console.(term.Cursor)
	return c, ok
}
