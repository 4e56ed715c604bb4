package cmd

import (
	"context"
	"time"

	"github.com/elseano/nspin/internal/cli"
	"github.com/elseano/nspin/pkg/spinner"
	"github.com/elseano/nspin/pkg/term"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	flagDebug bool
	flagPlain bool

	flagCharSet  string
	flagFrames   []string
	flagInterval time.Duration
	flagFormat   []string
	flagPosition string
	flagDuration time.Duration
	flagFinal    string
	flagLabel    string
)

// Replaced in tests.
var (
	wait            = cli.Sleep
	registryOptions []spinner.RegistryOption
	debugLogPath    = "debug.log"
)

// cleanup holds what PersistentPreRunE set up, released by execute.
var cleanup []func()

func newRegistry(cmd *cobra.Command) *spinner.Registry {
	out := cmd.OutOrStdout()

	var console *term.Output
	if flagPlain {
		color.NoColor = true
		console = term.NewOutputWithMode(out, false)
	} else {
		console = term.NewOutput(out)
	}

	return spinner.NewRegistry(console, registryOptions...)
}

func waitFor(ctx context.Context, d time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}

	return wait(ctx, d)
}
