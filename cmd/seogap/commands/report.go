package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seogap-go/pkg/analysis"
	"seogap-go/pkg/geo"
	"seogap-go/pkg/pagespeed"
	"seogap-go/pkg/report"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the HTML report from the collected data.",
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

		path, err := report.WriteFile(ws.store.Dir(), report.Assemble(result))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	},
}

// mergeAudits folds the separately persisted audit snapshots into the
// result so the report can include them.
func mergeAudits(cmd *cobra.Command, ws *workspace, result *analysis.Result) error {
	ctx := cmd.Context()

	if exists, err := ws.store.Exists(ctx, analysis.KeyGeo); err != nil {
		return err
	} else if exists {
		var audits map[string]geo.PageAudit
		if err := ws.store.Load(ctx, analysis.KeyGeo, &audits); err != nil {
			return err
		}
		result.Geo = audits
	}

	if exists, err := ws.store.Exists(ctx, analysis.KeyPerformance); err != nil {
		return err
	} else if exists {
		var perf []pagespeed.Result
		if err := ws.store.Load(ctx, analysis.KeyPerformance, &perf); err != nil {
			return err
		}
		result.Performance = perf
	}

	return nil
}
