package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keywordsCmd)
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Run the keyword API collection, gap processing, and gap categorization.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}

		result, err := ws.loadResult(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if result, err = ws.runner.CollectAPIData(ctx, result); err != nil {
			return err
		}
		if result, err = ws.runner.ProcessGaps(ctx, result); err != nil {
			return err
		}
		_, err = ws.runner.CollectDependent(ctx, result)
		return err
	},
}
