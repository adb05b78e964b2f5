package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamusis/medref/internal/catalog"
	"github.com/kamusis/medref/internal/config"
	"github.com/kamusis/medref/internal/logger"
)

var flagVerbose bool

// appLog is replaced by setupLogger before any command runs.
var appLog = logger.Nop()

// appCfg and appCfgErr hold the config resolved by setupLogger.
var (
	appCfg    *config.Config
	appCfgErr error
)

var rootCmd = &cobra.Command{
	Use:          "medref",
	Short:        "Layered medical reference for dental, transplant and surgical emergency topics",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `medref serves a read-only reference corpus. Every entry carries an
explanation at five levels, from basic to specialist.

Extra content can be dropped into ~/.medref/content/<domain>/ as YAML or TOML.`,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute is called by main.go.
func Execute() {
	defer func() { _ = appLog.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(_ *cobra.Command, _ []string) error {
	var level string
	// A broken config or level is reported by doctor and by the command that
	// needs the config; logging falls back to the default level.
	appCfg, appCfgErr = config.Resolve()
	if appCfgErr == nil {
		level = appCfg.LogLevel
	}
	l, err := logger.New(level, flagVerbose)
	if err != nil {
		if l, err = logger.New(logger.DefaultLevel, flagVerbose); err != nil {
			return err
		}
	}
	appLog = l
	return nil
}

// loadCatalog resolves the config and opens the catalog it points at.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, *config.Config, error) {
	cfg, err := appCfg, appCfgErr
	if cfg == nil && err == nil {
		cfg, err = config.Resolve()
	}
	if err != nil {
		printInfo(cmd.ErrOrStderr(), "", "run 'medref init' to write a fresh config")
		return nil, nil, fmt.Errorf("cannot load config: %w", err)
	}
	cat, err := catalog.Open(catalog.Options{
		ContentDir: cfg.ContentDir,
		Excludes:   cfg.Excludes,
		Logger:     appLog,
	})
	if err != nil {
		return nil, nil, err
	}
	appLog.Debug("catalog ready", zap.Strings("domains", cat.Names()), zap.String("content_dir", cfg.ContentDir))
	return cat, cfg, nil
}
