package cmd

import (
	"fmt"

	"github.com/elseano/nspin/internal/cli"
	"github.com/spf13/cobra"
)

func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [scenario]...",
		Short: "Show the demo scenarios",
		Long:  "Runs the named demo scenarios one after another, or all of them.",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			names := []string{"all"}
			for _, s := range cli.Scenarios() {
				names = append(names, s.Name)
			}

			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := selectScenarios(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			registry := newRegistry(cmd)

			for _, scenario := range scenarios {
				fmt.Fprintf(out, "%s: %s\n", scenario.Name, scenario.Description)

				env := &cli.Env{Registry: registry, Wait: waitFor}
				if err := scenario.Run(cmd.Context(), env); err != nil {
					registry.Shutdown()
					return err
				}

				for _, note := range env.Notes() {
					fmt.Fprintln(out, note)
				}

				fmt.Fprintln(out)
			}

			return nil
		},
	}

	return cmd
}

func selectScenarios(names []string) ([]cli.Scenario, error) {
	if len(names) == 0 || (len(names) == 1 && names[0] == "all") {
		return cli.Scenarios(), nil
	}

	var selected []cli.Scenario
	for _, name := range names {
		scenario, ok := cli.FindScenario(name)
		if !ok {
			return nil, argError("unknown demo %q", name)
		}

		selected = append(selected, scenario)
	}

	return selected, nil
}
