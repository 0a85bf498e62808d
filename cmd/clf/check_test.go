package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCheck(t *testing.T, css string) string {
	t.Helper()
	resetKoanf()
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	cssPath := writeFile(t, filepath.Join(dir, "app.css"), css)
	configPath := writeFile(t, filepath.Join(dir, ".clf.yaml"), fmt.Sprintf(`merger: dedup
stylesheets:
  - %q
components:
  button:
    base: "btn"
    variants:
      intent:
        primary: "btn-primary"
        ghost: "btn-ghost"
    defaultVariants:
      intent: primary
`, cssPath))

	require.NoError(t, loadConfigFromPath(configPath))
	require.NoError(t, k.Set("config", configPath))
	return configPath
}

const fullCSS = ".btn { display: inline-flex; } .btn-primary { color: white; } .btn-ghost { background: none; }"

func TestRunCheck_Clean(t *testing.T) {
	setupCheck(t, fullCSS)

	var buf bytes.Buffer
	require.NoError(t, runCheck(&buf))
	assert.Equal(t, "No issues in 1 component.\n", buf.String())
}

func TestRunCheck_MissingClass(t *testing.T) {
	configPath := setupCheck(t, ".btn { display: inline-flex; } .btn-primary { color: white; }")

	var buf bytes.Buffer
	err := runCheck(&buf)
	require.ErrorIs(t, err, errIssuesFound)

	out := buf.String()
	assert.Contains(t, out, configPath+":10:17: class \"btn-ghost\" not found in stylesheet (clf)")
	assert.Contains(t, out, "1 issue:")
}

func TestRunCheck_JSON(t *testing.T) {
	setupCheck(t, ".btn { display: inline-flex; } .btn-primary { color: white; }")
	require.NoError(t, k.Set("check::output-format", "json"))

	var buf bytes.Buffer
	require.ErrorIs(t, runCheck(&buf), errIssuesFound)

	var out struct {
		Summary struct {
			Errors int `json:"errors"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 1, out.Summary.Errors)
}

func TestRunCheck_Quiet(t *testing.T) {
	setupCheck(t, ".btn { display: inline-flex; }")
	require.NoError(t, k.Set("quiet", true))

	var buf bytes.Buffer
	require.ErrorIs(t, runCheck(&buf), errIssuesFound)
	assert.Empty(t, buf.String())
}

func TestRunCheck_StrictWarnings(t *testing.T) {
	setupCheck(t, fullCSS)
	// A default that matches no option is only a warning
	require.NoError(t, k.Set("components.button.defaultVariants.intent", "danger"))

	var buf bytes.Buffer
	require.NoError(t, runCheck(&buf))
	assert.Contains(t, buf.String(), `default value "danger" for variant "intent" matches no option`)

	require.NoError(t, k.Set("check::strict", true))
	require.ErrorIs(t, runCheck(&bytes.Buffer{}), errIssuesFound)
}
