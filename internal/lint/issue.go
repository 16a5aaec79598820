package lint

// Issue represents a single catalog problem in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "catalint"
	Check       string   `json:"Check"`       // "rule-grammar"
	Text        string   `json:"Text"`        // "expected colon in declaration"
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Rule text or preview markup the issue points into
	Pos         IssuePos `json:"Pos"`
}

// IssuePos locates an issue inside a catalog
type IssuePos struct {
	Source string `json:"Source"` // "embedded:catalog.yaml" or an overlay path
	Entry  string `json:"Entry"`  // Entry id
	Field  string `json:"Field"`  // "rule", "preview", "title", ...
	Column int    `json:"Column"` // 1-based offset into the field, 0 when unknown
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Check names
const (
	CheckRuleEmpty    = "rule-empty"
	CheckRuleGrammar  = "rule-grammar"
	CheckRuleProperty = "rule-property"
	CheckPreviewStyle = "preview-style"
	CheckMissingField = "missing-field"
)

// LinterName is reported as FromLinter on every issue
const LinterName = "catalint"

// Issue message formats
const (
	IssueRuleEmpty    = "rule %q has no declarations"
	IssueRuleGrammar  = "rule does not parse: %s"
	IssueRuleProperty = "rule does not declare %q"
	IssuePreviewStyle = "preview style attribute drops %q"
	IssueMissingField = "%s is empty"
)
