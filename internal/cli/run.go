package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/elseano/nspin/pkg/errs"
	"github.com/elseano/nspin/pkg/spinner"
	"github.com/elseano/nspin/pkg/util"
)

var ErrNoCommand = errors.New("no command given")

// Result describes a finished command.
type Result struct {
	Output   []byte
	ExitCode int
	Elapsed  time.Duration
}

// RunCommand runs argv while s spins with label. Output is captured rather
// than shown, so it can't disturb the spinner. A non-zero exit is reported as
// an *errs.ExecutionError alongside the result.
func RunCommand(ctx context.Context, s *spinner.Spinner, label string, argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, ErrNoCommand
	}

	var output bytes.Buffer

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Stdout = &output
	c.Stderr = &output

	util.Logger.Debug().Strs("argv", argv).Msg("Running command")

	s.Start(label)
	err := c.Run()

	result := &Result{Output: output.Bytes(), Elapsed: s.ElapsedTime()}

	if err == nil {
		s.Stop(Succeeded(label, result.Elapsed))
		return result, nil
	}

	s.Stop(Failed(label, result.Elapsed))

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		util.Logger.Debug().Int("exitCode", result.ExitCode).Msg("Command failed")

		return result, &errs.ExecutionError{Command: strings.Join(argv, " "), ExitCode: result.ExitCode}
	}

	result.ExitCode = -1
	return result, fmt.Errorf("running %s: %w", argv[0], err)
}
