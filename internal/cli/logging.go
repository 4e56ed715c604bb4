package cli

import (
	"os"

	"github.com/elseano/nspin/pkg/bus"
	"github.com/elseano/nspin/pkg/spinner"
	"github.com/elseano/nspin/pkg/util"
)

// SetupLogging writes debug logging into path when debugging, and discards
// it otherwise. The returned func closes the log file.
func SetupLogging(debugging bool, path string) (func(), error) {
	if !debugging {
		util.DiscardLogs()
		return func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	util.RedirectLogger(f)
	util.Logger.Info().Msg("Debug logging enabled")

	return func() { f.Close() }, nil
}

// LogEvents logs every spinner lifecycle event until the returned func is
// called.
func LogEvents() func() {
	handler := bus.HandlerFunc(func(event bus.Event) {
		if ev, ok := event.(*spinner.Event); ok {
			util.Logger.Info().
				Str("kind", ev.Kind.String()).
				Str("text", ev.Text).
				Int64("elapsed", ev.Spinner.ElapsedMillis()).
				Msg("Spinner event")
		}
	})

	bus.Subscribe(&handler)

	return func() { bus.Unsubscribe(&handler) }
}
