// Package spinner draws animated progress spinners on a console. Several
// spinners may run at once; each keeps its own row, stacked in start order.
//
//	s := spinner.New(spinner.WithFormat("cyan")).Start("Loading...")
//	defer s.Stop("Done!")
//
// Every method is safe for concurrent use. Calls which make no sense in the
// spinner's current state (Resume while running, Pause while stopped) are
// no-ops, so calls can always be chained.
package spinner

import (
	"fmt"
	"time"

	"github.com/elseano/nspin/pkg/bus"
	"github.com/elseano/nspin/pkg/errs"
	"github.com/elseano/nspin/pkg/style"
	"github.com/elseano/nspin/pkg/ticker"
	"github.com/elseano/nspin/pkg/util"
)

type Spinner struct {
	registry *Registry
	frames   []string
	interval time.Duration
	format   []string
	position Position
	style    style.Func

	frame     int
	text      string
	startedAt time.Time
	running   bool
	paused    bool
	timer     ticker.Handle

	// generation invalidates ticks scheduled before the latest cancel.
	generation uint64
	err        error
}

// New creates an idle spinner.
func New(opts ...Option) *Spinner {
	o := &options{
		frames:   DefaultFrames,
		interval: DefaultInterval,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.registry == nil {
		o.registry = DefaultRegistry()
	}

	if o.style == nil {
		o.style = style.New(o.registry.console.Interactive())
	}

	s := &Spinner{
		registry: o.registry,
		format:   o.format,
		position: o.position,
		style:    o.style,
	}

	s.setFrames(o.frames)
	s.setInterval(o.interval)

	return s
}

// Start registers the spinner, reserves its row and starts animating text.
// Starting a running or paused spinner keeps its row but otherwise behaves
// like Restart with the new text.
func (s *Spinner) Start(text string) *Spinner {
	return s.transition(func() *Event {
		s.text = text

		if s.running || s.paused {
			s.rewind()
			return &Event{Kind: Restarted, Text: text}
		}

		s.start()
		return &Event{Kind: Started, Text: text}
	})
}

// Pause stops the animation, keeping frame, text and start time.
func (s *Spinner) Pause() *Spinner {
	return s.transition(func() *Event {
		if !s.running || s.paused {
			util.Logger.Trace().Msg("Pause ignored, spinner not running")
			return nil
		}

		s.cancel()
		s.running = false
		s.paused = true

		return &Event{Kind: Paused, Text: s.text}
	})
}

// Resume continues a paused spinner from the frame it was paused on.
func (s *Spinner) Resume() *Spinner {
	return s.transition(func() *Event {
		if !s.paused {
			util.Logger.Trace().Msg("Resume ignored, spinner not paused")
			return nil
		}

		s.paused = false
		s.running = true
		s.schedule()

		return &Event{Kind: Resumed, Text: s.text}
	})
}

// Restart resets the frame and start time and animates the current text
// again. An active spinner stays on its row and nothing is drawn until the
// next tick.
func (s *Spinner) Restart() *Spinner {
	return s.transition(func() *Event {
		if s.running || s.paused {
			s.rewind()
			return &Event{Kind: Restarted, Text: s.text}
		}

		s.frame = 0
		s.start()
		return &Event{Kind: Started, Text: s.text}
	})
}

// Stop cancels the animation and replaces the spinner's line with
// finalText. Stopping a spinner which isn't active does nothing.
func (s *Spinner) Stop(finalText string) *Spinner {
	return s.transition(func() *Event {
		r := s.registry
		rows := r.rows(s)

		if rows < 0 {
			util.Logger.Trace().Msg("Stop ignored, spinner not active")
			return nil
		}

		s.cancel()
		rendererFor(r.console).final(s, rows, finalText)
		r.deregister(s)

		s.running = false
		s.paused = false

		return &Event{Kind: Stopped, Text: finalText}
	})
}

// UpdateText replaces the message shown from the next frame on.
func (s *Spinner) UpdateText(text string) *Spinner {
	return s.transition(func() *Event {
		s.text = text
		return nil
	})
}

// UpdateFrames replaces the animation frames and rewinds to the first one.
// An empty list falls back to DefaultFrames and records errs.ErrEmptyFrames.
func (s *Spinner) UpdateFrames(frames []string) *Spinner {
	return s.transition(func() *Event {
		s.setFrames(frames)
		return nil
	})
}

// SetInterval changes the time between frames. A running spinner is
// rescheduled at the new rate without losing its frame or start time.
// Non-positive durations fall back to DefaultInterval and record
// errs.ErrInvalidInterval.
func (s *Spinner) SetInterval(d time.Duration) *Spinner {
	return s.transition(func() *Event {
		s.setInterval(d)

		if s.running {
			s.cancel()
			s.schedule()
		}

		return nil
	})
}

// Interval is the time between frames.
func (s *Spinner) Interval() time.Duration {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	return s.interval
}

// CurrentFrame is the index of the frame the next tick will draw.
func (s *Spinner) CurrentFrame() int {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	return s.frame
}

// ElapsedTime is the time since the last Start or Restart, in whole
// milliseconds. It's zero for a spinner which never started.
func (s *Spinner) ElapsedTime() time.Duration {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	return s.elapsed()
}

// ElapsedMillis is ElapsedTime as an integer number of milliseconds.
func (s *Spinner) ElapsedMillis() int64 {
	return s.ElapsedTime().Milliseconds()
}

// Timer is the live tick handle, or nil when no tick is scheduled.
func (s *Spinner) Timer() ticker.Handle {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	return s.timer
}

func (s *Spinner) Running() bool {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	return s.running
}

func (s *Spinner) Paused() bool {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	return s.paused
}

func (s *Spinner) Text() string {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	return s.text
}

func (s *Spinner) Frames() []string {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	return append([]string(nil), s.frames...)
}

// Err reports the most recent configuration fallback, if any.
func (s *Spinner) Err() error {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	return s.err
}

// transition runs fn under the registry lock and emits the event it returns
// once the lock is released.
func (s *Spinner) transition(fn func() *Event) *Spinner {
	s.registry.mu.Lock()
	ev := fn()
	s.registry.mu.Unlock()

	if ev != nil {
		ev.Spinner = s
		util.Logger.Debug().Str("event", ev.Kind.String()).Str("text", ev.Text).Msg("Spinner transition")
		bus.Emit(ev)
	}

	return s
}

// start takes an idle or stopped spinner to running. Caller holds the lock.
func (s *Spinner) start() {
	r := s.registry

	s.startedAt = r.clock.Now()
	r.register(s)

	if _, ok := r.cursor(); ok {
		write(r.console, "\n")
	}

	s.running = true
	s.paused = false
	s.schedule()
}

// rewind restarts an active spinner in place. Caller holds the lock.
func (s *Spinner) rewind() {
	s.cancel()
	s.frame = 0
	s.startedAt = s.registry.clock.Now()
	s.paused = false
	s.running = true
	s.schedule()
}

func (s *Spinner) schedule() {
	gen := s.generation
	s.timer = s.registry.scheduler.Every(s.interval, func() { s.tick(gen) })
}

func (s *Spinner) cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	s.generation++
}

func (s *Spinner) tick(gen uint64) {
	r := s.registry

	r.mu.Lock()
	defer r.mu.Unlock()

	// Ticks already in flight when the spinner was paused, stopped or
	// rescheduled are dropped.
	if !s.running || gen != s.generation {
		return
	}

	rendererFor(r.console).tick(s, r.rows(s))
}

// advance returns the current frame and moves to the next one.
func (s *Spinner) advance() string {
	next, frame := Next(s.frames, s.frame)
	s.frame = next
	return frame
}

func (s *Spinner) compose(frame string) string {
	ms := s.elapsed().Milliseconds()

	if s.position == Right {
		return fmt.Sprintf("%s %s (%dms)", s.text, frame, ms)
	}

	return fmt.Sprintf("%s %s (%dms)", frame, s.text, ms)
}

func (s *Spinner) elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}

	return Elapsed(s.startedAt, s.registry.clock.Now())
}

func (s *Spinner) setFrames(frames []string) {
	if len(frames) == 0 {
		util.Logger.Warn().Msg("Empty frame list, using default frames")
		frames = DefaultFrames
		s.err = errs.ErrEmptyFrames
	}

	s.frames = append([]string(nil), frames...)
	s.frame = 0
}

func (s *Spinner) setInterval(d time.Duration) {
	if d <= 0 {
		util.Logger.Warn().Dur("interval", d).Msg("Invalid interval, using default")
		d = DefaultInterval
		s.err = errs.ErrInvalidInterval
	}

	s.interval = d
}
