package lint

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/yacobolo/cssplay/internal/term"
)

// Reporter handles formatting and outputting lint results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       term.ShouldUseColors(config.UseColors),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// PrintIssues outputs issues in golangci-lint format, grouped by source file.
// Within a source, catalog order is kept.
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Pos.Source < issues[j].Pos.Source
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// location renders "source:entry:field:col:" with the column omitted when unknown
func location(pos IssuePos) string {
	loc := fmt.Sprintf("%s:%s:%s", pos.Source, pos.Entry, pos.Field)
	if pos.Column > 0 {
		loc += fmt.Sprintf(":%d", pos.Column)
	}
	return loc + ":"
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	severity := issue.Severity
	if severity == SeverityError {
		severity = term.RenderStyle(term.StyleRed, severity, r.useColors)
	} else {
		severity = term.RenderStyle(term.StyleYellow, severity, r.useColors)
	}

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s: %s%s\n",
		term.RenderStyle(term.StyleCyan, location(issue.Pos), r.useColors),
		severity,
		issue.Text,
		term.RenderStyle(term.StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		if issue.Pos.Column > 0 {
			caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
			fmt.Fprintf(r.w, "\t%s\n", term.RenderStyle(term.StyleYellow, caret, r.useColors))
		}
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up in the terminal.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result Result) {
	totalIssues := len(result.Issues)

	fmt.Fprintln(r.w, "")

	header := pluralizeCount(totalIssues, "issue", "issues")
	var details []string
	if result.ErrorCount > 0 && result.WarningCount > 0 {
		details = append(details,
			pluralizeCount(result.ErrorCount, "error", "errors")+", "+
				pluralizeCount(result.WarningCount, "warning", "warnings"))
	}
	if result.TruncatedCount > 0 {
		details = append(details, pluralizeCount(result.TruncatedCount, "issue", "issues")+" truncated")
	}
	if len(details) > 0 {
		header += " (" + strings.Join(details, "; ") + ")"
	}

	style := term.StyleGreen
	switch {
	case result.ErrorCount > 0:
		style = term.StyleRed
	case result.WarningCount > 0:
		style = term.StyleYellow
	}
	fmt.Fprintf(r.w, "%s in %s:\n",
		term.RenderStyle(style, header, r.useColors),
		pluralizeCount(result.EntriesChecked, "entry", "entries"))

	checkCounts := make(map[string]int)
	for _, issue := range result.Issues {
		checkCounts[issue.Check]++
	}
	checks := make([]string, 0, len(checkCounts))
	for check := range checkCounts {
		checks = append(checks, check)
	}
	sort.Strings(checks)
	for _, check := range checks {
		fmt.Fprintf(r.w, "* %s: %d\n", check, checkCounts[check])
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
