package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seogap-go/pkg/report"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full workflow: collect, analyze, audit, and generate the report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}

		result, err := ws.runner.Run(cmd.Context())
		if err != nil {
			return err
		}

		path, err := report.WriteFile(ws.store.Dir(), report.Assemble(result))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Analysis complete. Report written to %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Total API cost: $%.2f\n", result.Metadata.TotalCost)
		return nil
	},
}
