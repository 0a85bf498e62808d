package check

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
	TotalIssues       int `json:"total_issues"`
	Errors            int `json:"errors"`
	Warnings          int `json:"warnings"`
	ComponentsChecked int `json:"components_checked"`
	ClassesChecked    int `json:"classes_checked"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Linter    string `json:"linter"`
	Component string `json:"component"`
	Source    string `json:"source,omitempty"`
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result, time.Now()))
}

func buildJSONOutput(result *Result, now time.Time) JSONOutput {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:      issue.Pos.Filename,
			Line:      issue.Pos.Line,
			Column:    issue.Pos.Column,
			Severity:  issue.Severity,
			Message:   issue.Text,
			Linter:    issue.FromLinter,
			Component: issue.Component,
			Source:    source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:       len(result.Issues),
			Errors:            result.Errors(),
			Warnings:          result.Warnings(),
			ComponentsChecked: result.ComponentsChecked,
			ClassesChecked:    result.ClassesChecked,
		},
		Issues: issues,
	}
}
