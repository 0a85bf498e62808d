package check

// Issue represents a single config problem in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "clf"
	Text        string   `json:"Text"`        // "variant \"size\" has no options"
	Severity    string   `json:"Severity"`    // "warning", "error"
	Component   string   `json:"Component"`   // "button"
	SourceLines []string `json:"SourceLines"` // Lines of config with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // ".clf.yaml"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 9 (1-based)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// LinterName is reported as FromLinter on every issue.
const LinterName = "clf"

// Issue texts
const (
	IssueUnknownDefault  = "default value %q for variant %q matches no option"
	IssueEmptyVariant    = "variant %q has no options"
	IssueEmptyBreakpoint = "responsive breakpoint %q is empty"
	IssueConflict        = "%s contains conflicting classes: %q merges to %q"
	IssueUnknownClass    = "class %q not found in stylesheet"
)
