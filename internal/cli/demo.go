package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/elseano/nspin/pkg/spinner"
	"github.com/elseano/nspin/pkg/util"
)

// Env is what a demo scenario runs against.
type Env struct {
	Registry *spinner.Registry

	// Wait blocks for d, or until ctx is done.
	Wait func(ctx context.Context, d time.Duration) error

	// Lookup resolves $VARIABLES in spinner text. It defaults to the process
	// environment.
	Lookup util.Lookup

	notes []string
}

// Sleep is the real-time Wait.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Notef records a line to print once the scenario has finished. Printing
// while spinners are drawing would shift their rows.
func (e *Env) Notef(format string, args ...interface{}) {
	e.notes = append(e.notes, fmt.Sprintf(format, args...))
}

// Notes returns the recorded lines.
func (e *Env) Notes() []string {
	return e.notes
}

func (e *Env) spinner(opts ...spinner.Option) *spinner.Spinner {
	return spinner.New(append([]spinner.Option{spinner.WithRegistry(e.Registry)}, opts...)...)
}

func (e *Env) text(s string) string {
	if e.Lookup == nil {
		return Expand(util.EnvLookup, s)
	}

	return Expand(e.Lookup, s)
}

type Scenario struct {
	Name        string
	Description string
	Run         func(ctx context.Context, env *Env) error
}

var scenarios = map[string]Scenario{}

func register(s Scenario) {
	scenarios[s.Name] = s
}

// Scenarios lists every demo, ordered by name.
func Scenarios() []Scenario {
	list := make([]Scenario, 0, len(scenarios))
	for _, s := range scenarios {
		list = append(list, s)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// FindScenario returns the named demo.
func FindScenario(name string) (Scenario, bool) {
	s, ok := scenarios[name]
	return s, ok
}

func init() {
	register(Scenario{
		Name:        "basic",
		Description: "A single spinner with a simple rotation",
		Run: func(ctx context.Context, env *Env) error {
			s := env.spinner(
				spinner.WithFrames("-", "\\", "|", "/"),
				spinner.WithInterval(100*time.Millisecond),
			).Start(env.text("Basic Task: Loading..."))

			if err := env.Wait(ctx, 3*time.Second); err != nil {
				return err
			}

			s.Stop(env.text(":white_check_mark: Basic Task Complete!"))
			return nil
		},
	})

	register(Scenario{
		Name:        "multiple",
		Description: "Two spinners stacked, finishing at different times",
		Run: func(ctx context.Context, env *Env) error {
			first := env.spinner(
				spinner.WithCharSet("bounce"),
				spinner.WithInterval(80*time.Millisecond),
				spinner.WithFormat("yellow"),
			).Start(env.text("Task 1: Downloading..."))

			second := env.spinner(
				spinner.WithCharSet("dots"),
				spinner.WithInterval(100*time.Millisecond),
				spinner.WithFormat("cyan"),
			).Start(env.text("Task 2: Processing..."))

			if err := env.Wait(ctx, 4*time.Second); err != nil {
				return err
			}

			first.Stop(env.text(":white_check_mark: Task 1 Complete!"))

			if err := env.Wait(ctx, time.Second); err != nil {
				return err
			}

			second.Stop(env.text(":white_check_mark: Task 2 Complete!"))
			return nil
		},
	})

	register(Scenario{
		Name:        "pause-resume",
		Description: "Pausing keeps the frame and start time",
		Run: func(ctx context.Context, env *Env) error {
			s := env.spinner(
				spinner.WithFrames("◜", "◝", "◞", "◟"),
				spinner.WithInterval(150*time.Millisecond),
			).Start(env.text("Pause/Resume Task: Running..."))

			if err := env.Wait(ctx, 2*time.Second); err != nil {
				return err
			}

			s.Pause()
			env.Notef("Spinner paused. Current frame: %d", s.CurrentFrame())

			if err := env.Wait(ctx, 2*time.Second); err != nil {
				return err
			}

			s.Resume()
			env.Notef("Spinner resumed. Current frame: %d", s.CurrentFrame())

			if err := env.Wait(ctx, 2*time.Second); err != nil {
				return err
			}

			s.Stop(env.text(":white_check_mark: Pause/Resume Task Complete!"))
			return nil
		},
	})

	register(Scenario{
		Name:        "restart",
		Description: "Restarting resets the frame and elapsed time",
		Run: func(ctx context.Context, env *Env) error {
			s := env.spinner(
				spinner.WithFrames("▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"),
				spinner.WithInterval(120*time.Millisecond),
			).Start(env.text("Restart Task: Running..."))

			if err := env.Wait(ctx, 3*time.Second); err != nil {
				return err
			}

			before := s.ElapsedMillis()
			s.Restart()
			env.Notef("Spinner restarted after %dms.", before)

			if err := env.Wait(ctx, 2*time.Second); err != nil {
				return err
			}

			s.Stop(env.text(":white_check_mark: Restart Task Complete!"))
			return nil
		},
	})

	register(Scenario{
		Name:        "state",
		Description: "Inspecting frame and elapsed time while running",
		Run: func(ctx context.Context, env *Env) error {
			s := env.spinner(
				spinner.WithFrames("▲", "▶", "▼", "◀"),
				spinner.WithInterval(100*time.Millisecond),
			).Start(env.text("State Inspection Task: Running..."))

			for i := 0; i < 3; i++ {
				if err := env.Wait(ctx, time.Second); err != nil {
					return err
				}

				frame, elapsed := s.CurrentFrame(), s.ElapsedMillis()
				s.UpdateText(env.text(fmt.Sprintf("State Inspection Task: frame %d at %dms", frame, elapsed)))
				env.Notef("Check %d: frame %d, elapsed %dms", i+1, frame, elapsed)
			}

			if err := env.Wait(ctx, 2*time.Second); err != nil {
				return err
			}

			s.Stop(env.text(":white_check_mark: State Inspection Task Complete!"))
			return nil
		},
	})

	register(Scenario{
		Name:        "long-task",
		Description: "Updating the text as progress is made",
		Run: func(ctx context.Context, env *Env) error {
			s := env.spinner(
				spinner.WithFrames("◴", "◷", "◶", "◵"),
				spinner.WithInterval(100*time.Millisecond),
			).Start(env.text("Long Task: Starting..."))

			for progress := 10; progress <= 100; progress += 10 {
				if err := env.Wait(ctx, 500*time.Millisecond); err != nil {
					return err
				}

				s.UpdateText(env.text(fmt.Sprintf("Long Task: Processing... %d%%", progress)))
			}

			s.Stop(env.text(":white_check_mark: Long Task Completed!"))
			return nil
		},
	})

	register(Scenario{
		Name:        "custom-format",
		Description: "Styled frames from a custom set",
		Run: func(ctx context.Context, env *Env) error {
			s := env.spinner(
				spinner.WithFrames("◰", "◳", "◲", "◱"),
				spinner.WithInterval(120*time.Millisecond),
				spinner.WithFormat("magenta"),
			).Start(env.text("Custom Format Task: Processing..."))

			if err := env.Wait(ctx, 3*time.Second); err != nil {
				return err
			}

			s.Stop(env.text(":white_check_mark: Custom Format Complete!"))
			return nil
		},
	})
}
