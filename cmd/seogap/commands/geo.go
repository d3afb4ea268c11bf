package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(geoCmd)
}

var geoCmd = &cobra.Command{
	Use:   "geo",
	Short: "Audit the configured pages for JSON-LD structured data.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}

		result, err := ws.loadResult(cmd)
		if err != nil {
			return err
		}

		_, err = ws.runner.RunGeo(cmd.Context(), result)
		return err
	},
}
