// Package lint checks catalog entries for rules and previews that would not
// show what the entry claims to demonstrate.
package lint

import (
	"errors"
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/html"

	"github.com/yacobolo/cssplay/internal/catalog"
	"github.com/yacobolo/cssplay/internal/rules"
)

// Config controls which issues are reported and how
type Config struct {
	Strict bool // Fail on warnings too

	// golangci-style reporting options
	MaxIssuesPerCheck int  // 0 = unlimited (default)
	MaxSameIssues     int  // 0 = unlimited (default)
	PrintIssuedLines  bool // Show the rule or preview text under each issue
	PrintLinterName   bool // Show (catalint) suffix
	UseColors         bool // Force color output (default: auto-detect)
}

// DefaultConfig returns the configuration used by the CLI when nothing is set
func DefaultConfig() Config {
	return Config{
		PrintIssuedLines: true,
		PrintLinterName:  true,
	}
}

// Result contains the issues found in one catalog
type Result struct {
	Issues         []Issue
	ErrorCount     int
	WarningCount   int
	EntriesChecked int
	TruncatedCount int // Issues removed due to limits
}

// Failed reports whether the result should fail a run.
// Errors always fail; in strict mode any issue does.
func (r *Result) Failed(strict bool) bool {
	if r.ErrorCount > 0 {
		return true
	}
	return strict && len(r.Issues) > 0
}

// Lint runs every check on every entry, in catalog order
func Lint(cat *catalog.Catalog, config Config) *Result {
	result := &Result{}

	var issues []Issue
	for _, e := range cat.Entries() {
		result.EntriesChecked++
		issues = append(issues, checkEntry(e)...)
	}

	issues, result.TruncatedCount = limitIssues(issues, config)
	result.Issues = issues

	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	return result
}

func checkEntry(e catalog.Entry) []Issue {
	var issues []Issue
	issues = append(issues, checkRuleEmpty(e)...)
	issues = append(issues, checkRuleGrammar(e)...)
	issues = append(issues, checkRuleProperty(e)...)
	issues = append(issues, checkPreviewStyle(e)...)
	issues = append(issues, checkMissingFields(e)...)
	return issues
}

func newIssue(e catalog.Entry, check, severity, field string, column int, text string) Issue {
	issue := Issue{
		FromLinter: LinterName,
		Check:      check,
		Text:       text,
		Severity:   severity,
		Pos: IssuePos{
			Source: e.Source,
			Entry:  e.ID,
			Field:  field,
			Column: column,
		},
	}
	switch field {
	case "rule":
		issue.SourceLines = []string{e.Rule}
	case "preview":
		issue.SourceLines = []string{e.Preview}
	}
	return issue
}

func checkRuleEmpty(e catalog.Entry) []Issue {
	if len(rules.Parse(e.Rule)) > 0 {
		return nil
	}
	return []Issue{newIssue(e, CheckRuleEmpty, SeverityError, "rule", 0, fmt.Sprintf(IssueRuleEmpty, e.Rule))}
}

// checkRuleGrammar runs the rule through a real CSS declaration-list parser.
// The parser recovers after each error, so every bad declaration is reported.
func checkRuleGrammar(e catalog.Entry) []Issue {
	var issues []Issue

	p := css.NewParser(parse.NewInputString(e.Rule), true)
	for {
		gt, _, _ := p.Next()
		if gt != css.ErrorGrammar {
			continue
		}
		if !p.HasParseError() {
			// ErrorGrammar without a parse error is EOF
			break
		}

		msg, column := p.Err().Error(), 0
		var perr *parse.Error
		if errors.As(p.Err(), &perr) {
			msg, column = perr.Message, perr.Column
		}
		issues = append(issues, newIssue(e, CheckRuleGrammar, SeverityWarning, "rule", column, fmt.Sprintf(IssueRuleGrammar, msg)))
	}
	return issues
}

// checkRuleProperty wants a declaration whose property is the entry id, or a
// longhand or shorthand of it ("grid-gap" for "grid", "border" for "border-color").
func checkRuleProperty(e catalog.Entry) []Issue {
	decls := rules.ParseDeclarations(e.Rule)
	if len(decls) == 0 {
		return nil // Reported by rule-empty
	}
	id := strings.ToLower(e.ID)
	for _, d := range decls {
		prop := strings.ToLower(d.Property)
		if prop == id || strings.HasPrefix(prop, id+"-") || strings.HasPrefix(id, prop+"-") {
			return nil
		}
	}
	return []Issue{newIssue(e, CheckRuleProperty, SeverityWarning, "rule", 0, fmt.Sprintf(IssueRuleProperty, e.ID))}
}

// checkPreviewStyle reports declarations in preview style attributes that the
// rule parser silently drops.
func checkPreviewStyle(e catalog.Entry) []Issue {
	var issues []Issue

	l := html.NewLexer(parse.NewInputString(e.Preview))
	for {
		tt, _ := l.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.AttributeToken || string(l.AttrKey()) != "style" {
			continue
		}

		style := stdhtml.UnescapeString(unquote(string(l.AttrVal())))
		for _, segment := range strings.Split(style, ";") {
			segment = strings.TrimSpace(segment)
			if segment == "" || len(rules.ParseDeclarations(segment)) > 0 {
				continue
			}
			column := strings.Index(e.Preview, segment) + 1
			issues = append(issues, newIssue(e, CheckPreviewStyle, SeverityWarning, "preview", column, fmt.Sprintf(IssuePreviewStyle, segment)))
		}
	}
	return issues
}

func checkMissingFields(e catalog.Entry) []Issue {
	var issues []Issue
	fields := []struct {
		name  string
		value string
	}{
		{"title", e.Title},
		{"description", e.Description},
		{"preview", e.Preview},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			issues = append(issues, newIssue(e, CheckMissingField, SeverityWarning, f.name, 0, fmt.Sprintf(IssueMissingField, f.name)))
		}
	}
	return issues
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// limitIssues applies the max-issues-per-check and max-same-issues limits
func limitIssues(issues []Issue, config Config) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerCheck > 0 {
		perCheck := make(map[string]int)
		var kept []Issue
		for _, issue := range issues {
			if perCheck[issue.Check] < config.MaxIssuesPerCheck {
				kept = append(kept, issue)
				perCheck[issue.Check]++
			}
		}
		issues = kept
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
