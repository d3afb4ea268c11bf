package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(collectCmd)
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect the target's sitemap, social profiles, and local/international signals.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}

		result := ws.runner.NewResult()
		_, err = ws.runner.CollectSignals(cmd.Context(), result)
		return err
	},
}
