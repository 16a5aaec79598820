package lint

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the lint result as a markdown report suitable for a
// pull request comment or job summary.
func WriteMarkdown(w io.Writer, result *Result) error {
	var b strings.Builder

	b.WriteString("# Catalog Lint Report\n\n")
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| **Status** | %s |\n", statusBadge(result))
	fmt.Fprintf(&b, "| **Entries Checked** | %d |\n", result.EntriesChecked)
	fmt.Fprintf(&b, "| **Total Issues** | %d (%d errors, %d warnings) |\n",
		len(result.Issues), result.ErrorCount, result.WarningCount)
	if result.TruncatedCount > 0 {
		fmt.Fprintf(&b, "| **Truncated** | %d |\n", result.TruncatedCount)
	}

	writeSection := func(title, severity string) {
		var rows []Issue
		for _, issue := range result.Issues {
			if issue.Severity == severity {
				rows = append(rows, issue)
			}
		}
		if len(rows) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n## %s\n\n", title)
		b.WriteString("| Entry | Field | Check | Message |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, issue := range rows {
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n",
				issue.Pos.Entry, issue.Pos.Field, issue.Check, escapeCell(issue.Text))
		}
	}
	writeSection("Errors", SeverityError)
	writeSection("Warnings", SeverityWarning)

	b.WriteString("\n---\n*Generated by cssplay lint*\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func statusBadge(result *Result) string {
	switch {
	case result.ErrorCount > 0:
		return "🔴 Failing"
	case result.WarningCount > 0:
		return "🟡 Warnings"
	default:
		return "🟢 Clean"
	}
}

// escapeCell keeps issue text from breaking the table
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
