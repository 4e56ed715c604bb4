package cmd

import (
	"strings"
	"time"

	"github.com/elseano/nspin/internal/cli"
	"github.com/elseano/nspin/pkg/spinner"
	"github.com/elseano/nspin/pkg/util"
	"github.com/spf13/cobra"
	"gopkg.in/guregu/null.v4"
)

func NewSpinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spin [message]...",
		Short: "Show a spinner for a while",
		Long: `Shows a spinner with the given message, then replaces it with the final text.
$VARIABLES and :emoji: codes are expanded in both.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			final := null.NewString(flagFinal, cmd.Flags().Changed("final"))
			return spin(cmd, strings.Join(args, " "), final)
		},
	}

	cmd.Flags().StringVar(&flagCharSet, "charset", "", "Named frame set (see `nspin charsets`)")
	cmd.Flags().StringSliceVar(&flagFrames, "frames", nil, "Comma separated frames")
	cmd.Flags().DurationVar(&flagInterval, "interval", spinner.DefaultInterval, "Time between frames")
	cmd.Flags().StringSliceVar(&flagFormat, "format", []string{"cyan"}, "Styles applied to the frame")
	cmd.Flags().StringVar(&flagPosition, "position", "left", "Frame position, left or right of the message")
	cmd.Flags().DurationVar(&flagDuration, "duration", 3*time.Second, "How long to spin")
	cmd.Flags().StringVar(&flagFinal, "final", "", "Final text (defaults to a tick and the message)")

	cmd.RegisterFlagCompletionFunc("charset", completeCharSets)
	cmd.RegisterFlagCompletionFunc("position", completePositions)

	return cmd
}

func spinOptions() ([]spinner.Option, error) {
	opts := []spinner.Option{spinner.WithFormat(flagFormat...)}

	switch {
	case len(flagFrames) > 0 && flagCharSet != "":
		return nil, argError("--frames and --charset can't be combined")
	case len(flagFrames) > 0:
		opts = append(opts, spinner.WithFrames(flagFrames...))
	case flagCharSet != "":
		frames, err := spinner.CharSet(flagCharSet)
		if err != nil {
			return nil, argError("%s", err)
		}

		opts = append(opts, spinner.WithFrames(frames...))
	}

	if flagInterval <= 0 {
		return nil, argError("--interval must be positive, got %s", flagInterval)
	}

	opts = append(opts, spinner.WithInterval(flagInterval))

	switch strings.ToLower(flagPosition) {
	case "left":
		opts = append(opts, spinner.WithPosition(spinner.Left))
	case "right":
		opts = append(opts, spinner.WithPosition(spinner.Right))
	default:
		return nil, argError("--position must be left or right, got %q", flagPosition)
	}

	return opts, nil
}

func spin(cmd *cobra.Command, message string, final null.String) error {
	if flagDuration < 0 {
		return argError("--duration must not be negative")
	}

	opts, err := spinOptions()
	if err != nil {
		return err
	}

	message = cli.Expand(util.EnvLookup, message)
	if message == "" {
		message = "Working..."
	}

	registry := newRegistry(cmd)
	s := spinner.New(append(opts, spinner.WithRegistry(registry))...).Start(message)

	if err := waitFor(cmd.Context(), flagDuration); err != nil {
		registry.Shutdown()
		return err
	}

	if final.Valid {
		s.Stop(cli.Expand(util.EnvLookup, final.String))
	} else {
		s.Stop(cli.Succeeded(message, s.ElapsedTime()))
	}

	return nil
}
