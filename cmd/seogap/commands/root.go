package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seogap-go/internal/config"
	"seogap-go/pkg/analysis"
	"seogap-go/pkg/logger"
	"seogap-go/pkg/storage"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "seogap",
	Short: "seogap collects SEO signals and computes keyword gaps against competitors.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			os.Setenv("LOG_LEVEL", "debug")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// workspace bundles everything a step command needs.
type workspace struct {
	cfg    *config.Config
	store  *storage.FileStorage
	runner *analysis.Runner
}

func newWorkspace() (*workspace, error) {
	manager := config.NewManager()
	cfg, err := manager.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// The flag wins over the config file level.
	if debug {
		cfg.Logger.Level = "debug"
	}

	logger.SetLogger(logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	}))

	store, err := storage.NewFileStorage(cfg.Storage.DataDir, analysis.ProjectName(cfg.Target.Domain))
	if err != nil {
		return nil, err
	}

	return &workspace{
		cfg:    cfg,
		store:  store,
		runner: analysis.NewRunner(cfg, store),
	}, nil
}

// loadResult restores the newest full-result snapshot, preferring the
// post-gap snapshot over the signal-collection one.
func (w *workspace) loadResult(cmd *cobra.Command) (analysis.Result, error) {
	ctx := cmd.Context()

	for _, key := range []string{analysis.KeyFinal, analysis.KeyPhase1, analysis.KeySignals} {
		exists, err := w.store.Exists(ctx, key)
		if err != nil {
			return analysis.Result{}, err
		}
		if !exists {
			continue
		}
		var result analysis.Result
		if err := w.store.Load(ctx, key, &result); err != nil {
			return analysis.Result{}, err
		}
		return result, nil
	}

	return w.runner.NewResult(), nil
}
