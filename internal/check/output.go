package check

import (
	"fmt"
	"io"
)

// OutputFormat selects how a Result is written.
type OutputFormat string

// Output formats
const (
	OutputIssues  OutputFormat = "issues"  // golangci-lint style issues plus summary
	OutputSummary OutputFormat = "summary" // summary only
	OutputJSON    OutputFormat = "json"    // machine-readable export
)

// ParseOutputFormat validates a --output-format value. The empty string
// selects OutputIssues.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", OutputIssues:
		return OutputIssues, nil
	case OutputSummary, OutputJSON:
		return OutputFormat(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (expected issues, summary or json)", s)
}

// WriteOutput writes the result in the given format.
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config ReportConfig) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)
	case OutputSummary:
		NewReporter(w, config).PrintSummary(result)
	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
	}
	return nil
}
