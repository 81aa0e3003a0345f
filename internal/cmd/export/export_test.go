package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/transjson/internal/cmd/cmdutil"
	"github.com/open-cli-collective/transjson/internal/config"
	"github.com/open-cli-collective/transjson/internal/logging"
)

func newSettings(t *testing.T) *cmdutil.Settings {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"main.tex":  "\\input{terms}\n",
		"terms.tex": "\\transSec{Ord}{Wörter}\n\\trans{\\emph{Bil}}{\\emph{Auto}}\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0644))
	}
	return &cmdutil.Settings{
		Root:    root,
		Config:  config.Default(),
		Logger:  logging.NoOp(),
		NoColor: true,
	}
}

func TestRunExport_Markdown(t *testing.T) {
	s := newSettings(t)
	var buf bytes.Buffer

	err := runExport(s, &exportOptions{format: "markdown", lang: "both"}, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "## Ord / Wörter")
	assert.Contains(t, output, "| Dansk | Deutsch |")
	assert.Contains(t, output, "Bil")

	// export never writes the translation JSON
	_, statErr := os.Stat(filepath.Join(s.Root, "web", "translation-data.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunExport_HTMLToFile(t *testing.T) {
	s := newSettings(t)
	out := filepath.Join(s.Root, "preview.html")

	err := runExport(s, &exportOptions{format: "html", lang: "a", title: "Ordliste", outFile: out}, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	page := string(data)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<h2>Ord</h2>")
	assert.NotContains(t, page, "Wörter")
}

func TestRunExport_InvalidOptions(t *testing.T) {
	s := newSettings(t)

	err := runExport(s, &exportOptions{format: "pdf"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid export format")

	err = runExport(s, &exportOptions{format: "html", lang: "fr"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid language")
}
