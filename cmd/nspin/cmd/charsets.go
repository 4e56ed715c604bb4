package cmd

import (
	"fmt"
	"strings"

	"github.com/elseano/nspin/pkg/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func NewCharSetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charsets",
		Short: "List the named frame sets",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return argError("charsets takes no arguments")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Name", "Frames", "Count"})

			for _, name := range spinner.CharSetNames() {
				frames := spinner.CharSets[name]
				t.AppendRow(table.Row{name, strings.Join(frames, " "), fmt.Sprintf("%d", len(frames))})
			}

			t.Render()
			return nil
		},
	}
}
