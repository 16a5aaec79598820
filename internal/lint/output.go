package lint

import (
	"fmt"
	"io"
)

// OutputFormat selects how a Result is written
type OutputFormat string

// Output formats
const (
	OutputIssues   OutputFormat = "issues"
	OutputJSON     OutputFormat = "json"
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown or empty values fall back to issues, as golangci-lint does.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	default:
		return OutputIssues
	}
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config Config) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}
