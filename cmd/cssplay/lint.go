package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssplay/internal/lint"
)

// errLintFailed is returned when the report has failing issues.
// The report itself is the error message.
var errLintFailed = errors.New("lint failed")

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check catalog entries and overlays",
		Long: `Check that every catalog rule parses and declares the property its entry
demonstrates, and that preview markup does not carry declarations the rule
parser would drop.`,
		Args: cobra.NoArgs,
		RunE: runLint,
	}

	f := cmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|json|markdown")
	f.Int("max-issues-per-check", 0, "Max issues to show per check (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show rule or preview text with issues")
	f.Bool("print-linter-name", true, "Show (catalint) suffix on issues")
	return cmd
}

func runLint(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()

	config := buildLintConfig()
	result := lint.Lint(a.cat, config)

	quiet := getBool("quiet", false)
	if !quiet {
		format := lint.DetermineOutputFormat(getString("lint.output-format", ""))
		if err := lint.WriteOutput(cmd.OutOrStdout(), result, format, config); err != nil {
			return err
		}
	}

	// Soft gate: errors always fail, warnings only in strict mode
	if result.Failed(config.Strict) {
		return errLintFailed
	}
	return nil
}
