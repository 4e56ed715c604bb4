package cmd

import (
	"strings"

	"github.com/elseano/nspin/internal/cli"
	"github.com/elseano/nspin/pkg/spinner"
	"github.com/spf13/cobra"
)

func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] -- command [args]...",
		Short: "Run a command behind a spinner",
		Long: `Runs the command while a spinner shows its progress. The command's output is
only shown when it fails, and its exit code is passed through.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return argError("no command given")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := spinOptions()
			if err != nil {
				return err
			}

			label := flagLabel
			if label == "" {
				label = strings.Join(args, " ")
			}

			s := spinner.New(append(opts, spinner.WithRegistry(newRegistry(cmd)))...)

			result, err := cli.RunCommand(cmd.Context(), s, label, args)
			if err != nil && result != nil {
				cmd.ErrOrStderr().Write(result.Output)
			}

			return err
		},
	}

	cmd.Flags().StringVar(&flagLabel, "label", "", "Message shown while the command runs (defaults to the command)")
	cmd.Flags().StringVar(&flagCharSet, "charset", "", "Named frame set (see `nspin charsets`)")
	cmd.Flags().StringSliceVar(&flagFrames, "frames", nil, "Comma separated frames")
	cmd.Flags().DurationVar(&flagInterval, "interval", spinner.DefaultInterval, "Time between frames")
	cmd.Flags().StringSliceVar(&flagFormat, "format", []string{"cyan"}, "Styles applied to the frame")
	cmd.Flags().StringVar(&flagPosition, "position", "left", "Frame position, left or right of the message")

	cmd.RegisterFlagCompletionFunc("charset", completeCharSets)
	cmd.RegisterFlagCompletionFunc("position", completePositions)

	return cmd
}
