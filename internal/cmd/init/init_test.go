package init

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/transjson/internal/config"
)

func TestPrefill(t *testing.T) {
	cfg := prefill("book.tex", "")
	assert.Equal(t, "book.tex", cfg.Manifest)
	assert.Equal(t, config.DefaultOutput, cfg.Output)
	assert.Equal(t, "danish", cfg.Languages.A.Key)
}

func TestNewForm(t *testing.T) {
	assert.NotNil(t, newForm(config.Default()))
}

func TestRequired(t *testing.T) {
	assert.NoError(t, required("manifest")("main.tex"))

	err := required("manifest")("")
	require.Error(t, err)
	assert.Equal(t, "manifest is required", err.Error())
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	cfg := prefill("", "public/data.json")
	cfg.Languages.B = config.Language{Key: "english", Label: "English"}

	var buf bytes.Buffer
	require.NoError(t, saveConfig(cfg, path, &buf))
	assert.Contains(t, buf.String(), "Configuration saved to "+path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "public/data.json", loaded.Output)
	assert.Equal(t, "english", loaded.Languages.B.Key)
}

func TestSaveConfig_Invalid(t *testing.T) {
	cfg := config.Default()
	cfg.Languages.B.Key = cfg.Languages.A.Key

	err := saveConfig(cfg, filepath.Join(t.TempDir(), config.FileName), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
