package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(performanceCmd)
}

var performanceCmd = &cobra.Command{
	Use:   "performance",
	Short: "Audit the configured pages through the PageSpeed API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}

		result, err := ws.loadResult(cmd)
		if err != nil {
			return err
		}

		_, err = ws.runner.RunPerformance(cmd.Context(), result)
		return err
	},
}
