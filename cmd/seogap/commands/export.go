package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seogap-go/pkg/export"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export keyword gaps, rankings, and performance data as CSV.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}

		result, err := ws.loadResult(cmd)
		if err != nil {
			return err
		}
		if err := mergeAudits(cmd, ws, &result); err != nil {
			return err
		}

		exporter, err := export.NewExporter(ws.store.Dir())
		if err != nil {
			return err
		}

		if _, err := exporter.WriteKeywordGaps(result.EnrichedGaps); err != nil {
			return err
		}
		if _, err := exporter.WriteCurrentRankings(result.RankedKeywords[result.Metadata.TargetDomain]); err != nil {
			return err
		}
		if _, err := exporter.WritePerformance(result.Performance); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "CSV exports written to %s\n", exporter.Dir())
		return nil
	},
}
