package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/cssplay/internal/catalog"
	"github.com/yacobolo/cssplay/internal/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cssplay",
		Short: "Interactive CSS property playground",
		Long: `Browse a catalog of CSS properties with live previews, parse declaration
text into style maps and apply your own rules to a preview box.
Runs the terminal playground when no subcommand is given.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE:          runPlay,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags (inherited by all subcommands)
	pf := root.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigPath, "Config file path")
	pf.StringSlice("include", nil, "Glob patterns for overlay catalog files")
	pf.String("gitignore", ".gitignore", "Gitignore applied to overlay matches")
	pf.String("log-level", "info", "Log level: debug|info|warn|error|none")
	pf.String("log-file", "", "Also write JSON logs to this rotated file")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newSearchCmd(),
		newParseCmd(),
		newLintCmd(),
		newPlayCmd(),
		newServeCmd(),
		newInitCmd(),
		newCompletionCmd(),
		newVersionCmd(),
	)
	return root
}

// app is what every command needs once configuration is loaded
type app struct {
	cat    *catalog.Catalog
	logger *zap.Logger
	close  func()
}

// setup builds the logger and loads the catalog with its overlays.
// Broken overlay files are logged and skipped.
func setup(console io.Writer) (*app, error) {
	return setupWith(buildLogConfig(console))
}

func setupWith(logConfig logging.Config) (*app, error) {
	logger, closeLog, err := logging.New(logConfig)
	if err != nil {
		return nil, err
	}

	cat, stats, err := catalog.Load(buildCatalogConfig())
	for _, e := range multierr.Errors(err) {
		logger.Warn("skipped catalog overlay", zap.Error(e))
	}
	if cat == nil {
		closeLog()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Debug("catalog loaded",
		zap.Int("entries", cat.Len()),
		zap.Int("files_discovered", stats.FilesDiscovered),
		zap.Int("files_loaded", stats.FilesLoaded),
		zap.Int("files_skipped", stats.FilesSkipped))

	return &app{cat: cat, logger: logger, close: closeLog}, nil
}
