package errs

import (
	"errors"
	"fmt"
)

// ExecutionError is returned when a wrapped command exits unsuccessfully.
type ExecutionError struct {
	Command  string
	ExitCode int
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}

var ErrEmptyFrames = errors.New("spinner frames must not be empty")
var ErrInvalidInterval = errors.New("spinner interval must be positive")
var ErrUnknownCharSet = errors.New("unknown charset")
