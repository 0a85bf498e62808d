package stylesheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheet_Add(t *testing.T) {
	sheet := NewSheet()
	require.NoError(t, sheet.Add(strings.NewReader(".btn { color: red; }"), "a.css"))
	require.NoError(t, sheet.Add(strings.NewReader(".btn { padding: 1rem; } .btn:focus { outline: none; } .card { display: block; }"), "b.css"))

	assert.Equal(t, 2, sheet.Len())
	assert.Equal(t, []string{"a.css", "b.css"}, sheet.Files())

	btn, ok := sheet.Lookup("btn")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"color": "red", "padding": "1rem"}, btn.Properties)
	assert.Equal(t, []string{":focus"}, btn.PseudoStates)
	assert.Equal(t, "a.css", btn.SourceFile)
}

func TestSheet_Has(t *testing.T) {
	sheet := NewSheet()
	require.NoError(t, sheet.Add(strings.NewReader(`.p-4 { padding: 1rem; } .lg\:grid { display: grid; }`), "u.css"))

	assert.True(t, sheet.Has("p-4"))
	assert.True(t, sheet.Has("md:hover:p-4"))
	assert.True(t, sheet.Has("!p-4"))
	assert.True(t, sheet.Has("lg:grid"))
	assert.False(t, sheet.Has("p-8"))
	assert.False(t, sheet.Has("md:p-8"))

	var nilSheet *Sheet
	assert.False(t, nilSheet.Has("p-4"))
}

func TestSheet_AddFileMissing(t *testing.T) {
	err := NewSheet().AddFile(filepath.Join(t.TempDir(), "missing.css"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read file")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "components"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.css"), []byte(".p-4 { padding: 1rem; }"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "components", "button.css"), []byte(".btn { color: red; }"), 0o600))

	sheet, stats, err := Load([]string{filepath.Join(dir, "**", "*.css")})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FilesScanned)
	assert.True(t, sheet.Has("p-4"))
	assert.True(t, sheet.Has("btn"))
	assert.Len(t, sheet.Files(), 2)
}
