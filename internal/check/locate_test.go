package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindColumn(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		target  string
		wantCol int
	}{
		{
			name:    "yaml key",
			line:    "    variants:",
			target:  "variants",
			wantCol: 5,
		},
		{
			name:    "quoted value",
			line:    `    base: "btn"`,
			target:  "btn",
			wantCol: 12,
		},
		{
			name:    "token inside quoted list",
			line:    `    base: "btn btn--primary"`,
			target:  "btn--primary",
			wantCol: 16,
		},
		{
			name:    "prefix of another token is skipped",
			line:    `    base: "btn--primary btn"`,
			target:  "btn",
			wantCol: 25,
		},
		{
			name:    "modified utility does not match bare utility",
			line:    `    md: "md:p-4 p-4"`,
			target:  "p-4",
			wantCol: 17,
		},
		{
			name:    "toml table header",
			line:    "[components.button.variants]",
			target:  "button",
			wantCol: 13,
		},
		{
			name:    "toml key",
			line:    `primary = "bg-blue"`,
			target:  "primary",
			wantCol: 1,
		},
		{
			name:    "not found",
			line:    `    base: "btn"`,
			target:  "card",
			wantCol: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantCol, findColumn(tt.line, tt.target))
		})
	}
}

func TestLocator_Find(t *testing.T) {
	source := []byte("components:\n  card:\n    base: \"p-4\"\n  button:\n    base: \"p-4\"\n")
	loc := newLocator(".clf.yaml", source)

	pos, lines := loc.find("components", "button", "base", "p-4")
	assert.Equal(t, IssuePos{Filename: ".clf.yaml", Line: 5, Column: 12}, pos)
	assert.Equal(t, []string{`    base: "p-4"`}, lines)

	// Missing elements are skipped
	pos, _ = loc.find("components", "button", "variants", "base")
	assert.Equal(t, 5, pos.Line)

	pos, lines = newLocator("empty.yaml", nil).find("components", "button")
	assert.Equal(t, IssuePos{Filename: "empty.yaml"}, pos)
	assert.Nil(t, lines)
}
