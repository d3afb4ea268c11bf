package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seogap-go/pkg/analysis"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which workflow steps have data on disk.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		steps := []struct {
			key  string
			name string
		}{
			{analysis.KeySignals, "Site signal collection"},
			{analysis.KeyPhase1, "API data collection"},
			{analysis.KeyFinal, "Gap analysis"},
			{analysis.KeyGeo, "Structured data audit"},
			{analysis.KeyPerformance, "Performance audit"},
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Project: %s (%s)\n", ws.cfg.Target.CompanyName, ws.cfg.Target.Domain)
		fmt.Fprintf(out, "Data directory: %s\n\n", ws.store.Dir())

		for _, step := range steps {
			exists, err := ws.store.Exists(ctx, step.key)
			if err != nil {
				return err
			}
			mark := " "
			if exists {
				mark = "x"
			}
			fmt.Fprintf(out, "  [%s] %s (%s.json)\n", mark, step.name, step.key)
		}
		return nil
	},
}
