package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/elseano/nspin/pkg/errs"
	"github.com/elseano/nspin/pkg/spinner"
	"github.com/elseano/nspin/pkg/term"
	"github.com/elseano/nspin/pkg/util"
	"github.com/elseano/nspin/testutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runNspin executes a fresh command tree against a fake clock, returning
// stdout, stderr and the exit code.
func runNspin(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	ft := testutil.NewFakeTime()

	prevWait, prevOpts, prevColor := wait, registryOptions, color.NoColor
	t.Cleanup(func() {
		wait, registryOptions, color.NoColor = prevWait, prevOpts, prevColor
	})

	color.NoColor = true
	registryOptions = []spinner.RegistryOption{
		spinner.WithClock(ft),
		spinner.WithScheduler(ft),
		spinner.WithExitHook(nil),
	}
	wait = func(ctx context.Context, d time.Duration) error {
		ft.Advance(d)
		return nil
	}

	var stdout, stderr bytes.Buffer

	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := execute(root)

	return stdout.String(), stderr.String(), ExitCode(err)
}

func TestSpin(t *testing.T) {
	out, _, code := runNspin(t, "spin", "--interval", "100ms", "--duration", "300ms", "Hello", "world")

	assert.Equal(t, 0, code)
	testutil.AssertLines(t, `Hello world - (100ms)
Hello world \ (200ms)
Hello world | (300ms)
✓ Hello world (300ms)
`, out)
}

func TestSpinFinalText(t *testing.T) {
	t.Setenv("NSPIN_TARGET", "prod")

	out, _, code := runNspin(t, "spin", "--duration", "0s", "--final", ":rocket: Deployed $NSPIN_TARGET", "Deploying")

	assert.Equal(t, 0, code)
	assert.Equal(t, "🚀 Deployed prod\n", out)
}

func TestSpinEmptyFinalText(t *testing.T) {
	out, _, code := runNspin(t, "spin", "--duration", "0s", "--final", "", "Quiet")

	assert.Equal(t, 0, code)
	assert.Equal(t, "\n", out)
}

func TestSpinCharSetAndPosition(t *testing.T) {
	out, _, code := runNspin(t, "spin", "--charset", "bounce", "--position", "right", "--interval", "10ms", "--duration", "20ms", "Bouncing")

	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "Bouncing . (10ms)\nBouncing o (20ms)\n"), out)
}

func TestSpinInvalidArguments(t *testing.T) {
	for _, args := range [][]string{
		{"spin", "--charset", "nope"},
		{"spin", "--position", "middle"},
		{"spin", "--interval", "0s"},
		{"spin", "--frames", "a,b", "--charset", "dots"},
		{"spin", "--duration", "-1s"},
		{"spin", "--unknown-flag"},
		{"charsets", "extra"},
		{"demo", "nope"},
		{"run"},
	} {
		_, stderr, code := runNspin(t, args...)

		assert.Equal(t, 2, code, "%v", args)
		assert.Contains(t, stderr, "Error", "%v", args)
	}
}

func TestRunSuccess(t *testing.T) {
	out, stderr, code := runNspin(t, "run", "--label", "Echoing", "--", "sh", "-c", "echo hidden")

	assert.Equal(t, 0, code)
	assert.Equal(t, "✓ Echoing (0ms)\n", out)
	assert.Empty(t, stderr)
}

func TestRunFailurePassesExitCode(t *testing.T) {
	out, stderr, code := runNspin(t, "run", "--", "sh", "-c", "echo broken >&2; exit 4")

	assert.Equal(t, 4, code)
	assert.Equal(t, "✗ sh -c echo broken >&2; exit 4 (0ms)\n", out)
	assert.Contains(t, stderr, "broken\n")
	assert.Contains(t, stderr, "exited with status 4")
}

func TestDemo(t *testing.T) {
	out, _, code := runNspin(t, "demo", "basic", "restart")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "basic: A single spinner with a simple rotation\n")
	assert.Contains(t, out, "✅ Basic Task Complete!\n")
	assert.Contains(t, out, "Spinner restarted after 3000ms.\n")
	assert.Contains(t, out, "✅ Restart Task Complete!\n")
}

func TestDemoAll(t *testing.T) {
	out, _, code := runNspin(t, "demo")

	assert.Equal(t, 0, code)
	// multiple finishes two spinners, every other scenario one.
	assert.Equal(t, 8, strings.Count(out, "✅ "))
	for _, name := range []string{"basic", "custom-format", "long-task", "multiple", "pause-resume", "restart", "state"} {
		assert.Contains(t, out, name+": ")
	}
}

func TestCharSets(t *testing.T) {
	out, _, code := runNspin(t, "charsets")

	assert.Equal(t, 0, code)
	for _, name := range spinner.CharSetNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, ". o O o")
}

func TestCompletion(t *testing.T) {
	out, _, code := runNspin(t, "completion", "bash")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "nspin")

	_, _, code = runNspin(t, "completion", "tcsh")
	assert.Equal(t, 2, code)
}

func TestCharSetFlagCompletion(t *testing.T) {
	out, _, code := runNspin(t, cobra.ShellCompRequestCmd, "spin", "--charset", "")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "bounce\n")
	assert.Contains(t, out, "dots\n")
}

func TestDebugLogReleasedWhenCommandFails(t *testing.T) {
	prevLogger, prevPath := util.Logger, debugLogPath
	t.Cleanup(func() { util.Logger, debugLogPath = prevLogger, prevPath })

	debugLogPath = filepath.Join(t.TempDir(), "debug.log")

	_, _, code := runNspin(t, "--debug", "run", "--", "sh", "-c", "exit 1")

	assert.Equal(t, 1, code)
	assert.Empty(t, cleanup)

	logged, err := os.ReadFile(debugLogPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(logged), "Spinner event"))

	// The event handler is gone, so further spinners aren't logged.
	var buf bytes.Buffer
	util.RedirectLogger(&buf)

	registry := spinner.NewRegistry(term.NewOutputWithMode(&bytes.Buffer{}, false), spinner.WithExitHook(nil))
	spinner.New(spinner.WithRegistry(registry)).Start("Unlogged").Stop("Done")

	assert.Contains(t, buf.String(), "Spinner transition")
	assert.NotContains(t, buf.String(), "Spinner event")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(argError("bad")))
	assert.Equal(t, 1, ExitCode(ErrorCommand))
	assert.Equal(t, 7, ExitCode(handleError(&bytes.Buffer{}, &errs.ExecutionError{Command: "x", ExitCode: 7})))
	assert.Equal(t, 3, ExitCode(errors.New("boom")))
	assert.Equal(t, 3, ExitCode(handleError(&bytes.Buffer{}, errors.New("boom"))))
}

func TestHandleErrorWrapsInternal(t *testing.T) {
	var buf bytes.Buffer

	err := handleError(&buf, errors.New("disk on fire"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrorInternal)
	assert.Contains(t, buf.String(), "disk on fire")
}
