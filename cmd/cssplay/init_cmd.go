package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default .cssplay.yaml config file",
		Long:  `Create a config file (default .cssplay.yaml in the current directory) with sensible defaults.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = defaultConfigPath
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite existing config file")
	return cmd
}

const defaultConfig = `# cssplay configuration

verbose: false
color: false

# Extra catalog entries. Entries with a built-in id replace the built-in one.
catalog:
  include:
    - "catalog.d/**/*.yaml"
  gitignore: .gitignore

log:
  level: info              # debug | info | warn | error | none
  file: ""                 # rotated JSON log file, e.g. cssplay.log

# Terminal cell metrics used to project CSS lengths
preview:
  cell-width: 8
  cell-height: 16

lint:
  strict: false
  output-format: issues    # issues | json | markdown
  max-issues-per-check: 0  # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

serve:
  addr: 127.0.0.1:8080
`
