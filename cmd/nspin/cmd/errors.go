package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/elseano/nspin/pkg/errs"
	"github.com/logrusorgru/aurora"
)

var (
	ErrorInternal = errors.New("Internal nspin error")
	ErrorArg      = errors.New("Invalid arguments")
	ErrorCommand  = errors.New("Command failed")
)

func argError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrorArg, fmt.Sprintf(format, args...))
}

func handleError(dest io.Writer, err error) error {
	if err == nil {
		return nil
	}

	var execErr *errs.ExecutionError
	if errors.As(err, &execErr) {
		fmt.Fprintf(dest, "%s: %s\n", aurora.Red("Failure"), execErr)
		return fmt.Errorf("%w: %w", ErrorCommand, err)
	}

	fmt.Fprintf(dest, "%s: %s\n", aurora.Red("Error"), err)

	if errors.Is(err, ErrorArg) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrorInternal, err)
}

// ExitCode maps the result of Execute to the process exit code. A failed
// wrapped command passes its own exit code through.
func ExitCode(err error) int {
	var execErr *errs.ExecutionError

	switch {
	case err == nil:
		return 0
	case errors.As(err, &execErr) && execErr.ExitCode > 0:
		return execErr.ExitCode
	case errors.Is(err, ErrorCommand):
		return 1
	case errors.Is(err, ErrorArg):
		return 2
	}

	return 3
}
