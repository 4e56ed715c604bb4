package cmd

import (
	"github.com/elseano/nspin/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = NewRootCmd()

func RootCmd() *cobra.Command {
	return rootCmd
}

func Execute(version string, gitCommit string) error {
	rootCmd.Version = version + " (" + gitCommit + ")"

	return execute(rootCmd)
}

// execute runs root and releases whatever the run set up, also when the
// command failed.
func execute(root *cobra.Command) error {
	defer runCleanup()

	return handleError(root.ErrOrStderr(), root.Execute())
}

func runCleanup() {
	for i := len(cleanup) - 1; i >= 0; i-- {
		cleanup[i]()
	}

	cleanup = nil
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nspin",
		Short:         "Terminal spinners",
		Long:          `nspin draws animated spinners, alone or stacked, while work happens`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := cli.SetupLogging(flagDebug, debugLogPath)
			if err != nil {
				return err
			}

			cleanup = append(cleanup, closeLog)

			if flagDebug {
				cleanup = append(cleanup, cli.LogEvents())
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debugging info to debug.log")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Print one line per frame instead of animating")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return argError("%s", err)
	})

	rootCmd.AddCommand(NewSpinCmd())
	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewDemoCmd())
	rootCmd.AddCommand(NewCharSetsCmd())
	rootCmd.AddCommand(NewCompletionCmd())

	return rootCmd
}
