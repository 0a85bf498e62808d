package check

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: `    base: "btn"`,
			column:     12,
			want:       "           ^", // 11 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\tbase = \"btn\"",
			column:     11,
			want:       "\t\t        ^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func TestReporter_PrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf, printLines: true, printLinterName: true}

	r.PrintIssues([]Issue{
		{
			FromLinter:  LinterName,
			Text:        `class "lg:missing" not found in stylesheet`,
			Severity:    SeverityError,
			SourceLines: []string{`      lg: "p-4 missing"`},
			Pos:         IssuePos{Filename: ".clf.yaml", Line: 12, Column: 16},
		},
		{
			FromLinter: LinterName,
			Text:       `variant "size" has no options`,
			Severity:   SeverityWarning,
			Pos:        IssuePos{Filename: ".clf.yaml", Line: 7, Column: 7},
		},
	})

	want := ".clf.yaml:7:7: variant \"size\" has no options (clf)\n" +
		".clf.yaml:12:16: class \"lg:missing\" not found in stylesheet (clf)\n" +
		"\t      lg: \"p-4 missing\"\n" +
		"\t               ^\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_PrintSummary(t *testing.T) {
	t.Run("no issues", func(t *testing.T) {
		var buf bytes.Buffer
		r := &Reporter{w: &buf}
		r.PrintSummary(&Result{ComponentsChecked: 2})
		assert.Equal(t, "No issues in 2 components.\n", buf.String())
	})

	t.Run("errors and warnings", func(t *testing.T) {
		var buf bytes.Buffer
		r := &Reporter{w: &buf}
		r.PrintSummary(&Result{
			ComponentsChecked: 2,
			Issues: []Issue{
				{Severity: SeverityError, Component: "card"},
				{Severity: SeverityWarning, Component: "button"},
				{Severity: SeverityWarning, Component: "button"},
			},
		})
		assert.Equal(t, "\n3 issues (1 error, 2 warnings):\n* button: 2\n* card: 1\n", buf.String())
	})

	t.Run("warnings only", func(t *testing.T) {
		var buf bytes.Buffer
		r := &Reporter{w: &buf}
		r.PrintSummary(&Result{Issues: []Issue{{Severity: SeverityWarning, Component: "card"}}})
		assert.Equal(t, "\n1 issue:\n* card: 1\n", buf.String())
	})
}

func TestNewReporter_ExplicitColors(t *testing.T) {
	r := NewReporter(&bytes.Buffer{}, ReportConfig{UseColors: true})
	assert.True(t, r.UseColors())
}

func TestShouldUseColors_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "1")
	assert.False(t, shouldUseColors(ReportConfig{}))
}
