package lint

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues    int `json:"total_issues"`
	Errors         int `json:"errors"`
	Warnings       int `json:"warnings"`
	Truncated      int `json:"truncated"`
	EntriesChecked int `json:"entries_checked"`
}

// JSONIssue represents a single lint issue
type JSONIssue struct {
	Source   string `json:"source"`
	Entry    string `json:"entry"`
	Field    string `json:"field"`
	Column   int    `json:"column,omitempty"`
	Severity string `json:"severity"`
	Check    string `json:"check"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Context  string `json:"context,omitempty"` // Rule or preview text
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		context := ""
		if len(issue.SourceLines) > 0 {
			context = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			Source:   issue.Pos.Source,
			Entry:    issue.Pos.Entry,
			Field:    issue.Pos.Field,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Check:    issue.Check,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Context:  context,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:    len(result.Issues),
			Errors:         result.ErrorCount,
			Warnings:       result.WarningCount,
			Truncated:      result.TruncatedCount,
			EntriesChecked: result.EntriesChecked,
		},
		Issues: jsonIssues,
	}
}
