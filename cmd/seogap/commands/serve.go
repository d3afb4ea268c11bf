package commands

import (
	"github.com/spf13/cobra"

	"seogap-go/internal/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated report, exports, and a status API over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newWorkspace()
		if err != nil {
			return err
		}

		return server.New(ws.cfg, ws.store, ws.store.Dir()).Start()
	},
}
