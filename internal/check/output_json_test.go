package check

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildJSONOutput(t *testing.T) {
	result := &Result{
		ComponentsChecked: 3,
		ClassesChecked:    12,
		Issues: []Issue{
			{
				FromLinter:  LinterName,
				Text:        `class "btn" not found in stylesheet`,
				Severity:    SeverityError,
				Component:   "button",
				SourceLines: []string{`    base: "btn"`},
				Pos:         IssuePos{Filename: ".clf.yaml", Line: 3, Column: 12},
			},
			{
				FromLinter: LinterName,
				Text:       `variant "size" has no options`,
				Severity:   SeverityWarning,
				Component:  "button",
			},
		},
	}

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	out := buildJSONOutput(result, now)

	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, "2026-01-02T03:04:05Z", out.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 2, Errors: 1, Warnings: 1, ComponentsChecked: 3, ClassesChecked: 12}, out.Summary)
	require.Len(t, out.Issues, 2)
	assert.Equal(t, JSONIssue{
		File:      ".clf.yaml",
		Line:      3,
		Column:    12,
		Severity:  SeverityError,
		Message:   `class "btn" not found in stylesheet`,
		Linter:    LinterName,
		Component: "button",
		Source:    `    base: "btn"`,
	}, out.Issues[0])
	assert.Empty(t, out.Issues[1].Source)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &Result{ComponentsChecked: 1}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "1.0", decoded["version"])
	assert.Equal(t, []any{}, decoded["issues"])
	assert.Contains(t, buf.String(), "\n  \"summary\"")
}
