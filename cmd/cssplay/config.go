package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/cssplay/internal/catalog"
	"github.com/yacobolo/cssplay/internal/lint"
	"github.com/yacobolo/cssplay/internal/logging"
	"github.com/yacobolo/cssplay/internal/preview"
)

const defaultConfigPath = ".cssplay.yaml"

var k = koanf.New(".")

// flagConfigKeys maps flag names to their key in the config file.
// Flags not listed use their own name as the key.
var flagConfigKeys = map[string]string{
	"include":              "catalog.include",
	"gitignore":            "catalog.gitignore",
	"log-level":            "log.level",
	"log-file":             "log.file",
	"cell-width":           "preview.cell-width",
	"cell-height":          "preview.cell-height",
	"strict":               "lint.strict",
	"output-format":        "lint.output-format",
	"max-issues-per-check": "lint.max-issues-per-check",
	"max-same-issues":      "lint.max-same-issues",
	"print-lines":          "lint.print-lines",
	"print-linter-name":    "lint.print-linter-name",
	"addr":                 "serve.addr",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags. Unchanged flags only fill keys nothing else has set.
	fs := cmd.Flags()
	provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		return configKey(f.Name), posflag.FlagVal(fs, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}
	return nil
}

func configKey(flagName string) string {
	if key, ok := flagConfigKeys[flagName]; ok {
		return key
	}
	return flagName
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSPLAY_* prefix)
	if err := k.Load(env.Provider("CSSPLAY_", ".", func(s string) string {
		// CSSPLAY_LOG_LEVEL -> log.level
		// CSSPLAY_SERVE_ADDR -> serve.addr
		// CSSPLAY_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSPLAY_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildCatalogConfig constructs the overlay discovery settings from koanf state.
func buildCatalogConfig() catalog.Config {
	return catalog.Config{
		Includes:  k.Strings("catalog.include"),
		GitIgnore: getString("catalog.gitignore", ".gitignore"),
	}
}

func buildPreviewOptions() preview.Options {
	defaults := preview.DefaultOptions()
	return preview.Options{
		CellWidthPx:  getInt("preview.cell-width", defaults.CellWidthPx),
		CellHeightPx: getInt("preview.cell-height", defaults.CellHeightPx),
	}
}

// buildLogConfig constructs the logger settings. --verbose forces debug.
// A nil console disables console logging.
func buildLogConfig(console io.Writer) logging.Config {
	level := getString("log.level", "info")
	if getBool("verbose", false) {
		level = "debug"
	}
	return logging.Config{
		Level:   level,
		File:    getString("log.file", ""),
		Console: console,
		Color:   getBool("color", false),
	}
}

// buildPlayLogConfig never logs to the terminal, which belongs to the UI.
// Without log.file the log goes to cssplay.log in the temp directory.
func buildPlayLogConfig() logging.Config {
	config := buildLogConfig(nil)
	if config.File == "" {
		config.File = defaultPlayLogFile()
	}
	return config
}

func defaultPlayLogFile() string {
	return filepath.Join(os.TempDir(), "cssplay.log")
}

// buildLintConfig constructs the linter's Config struct from koanf state.
func buildLintConfig() lint.Config {
	defaults := lint.DefaultConfig()
	return lint.Config{
		Strict:            getBool("lint.strict", defaults.Strict),
		MaxIssuesPerCheck: getInt("lint.max-issues-per-check", defaults.MaxIssuesPerCheck),
		MaxSameIssues:     getInt("lint.max-same-issues", defaults.MaxSameIssues),
		PrintIssuedLines:  getBool("lint.print-lines", defaults.PrintIssuedLines),
		PrintLinterName:   getBool("lint.print-linter-name", defaults.PrintLinterName),
		UseColors:         getBool("color", defaults.UseColors),
	}
}

// getString returns the key's value, or the default when it is unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
