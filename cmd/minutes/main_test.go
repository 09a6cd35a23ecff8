package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanamz/minutes/pkg/apierror"
)

func TestReadNotes_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("- Sarah: Q4 on track"), 0o600))

	notes, err := readNotes(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "- Sarah: Q4 on track", notes)
}

func TestReadNotes_Stdin(t *testing.T) {
	notes, err := readNotes("-", strings.NewReader("from stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin\n", notes)
}

func TestReadNotes_Missing(t *testing.T) {
	_, err := readNotes(filepath.Join(t.TempDir(), "nope"), nil)
	assert.ErrorContains(t, err, "read notes")
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("MINUTES_CONFIG", "")
	t.Chdir(t.TempDir())

	assert.Equal(t, "explicit.yaml", resolveConfigPath("explicit.yaml"))
	assert.Empty(t, resolveConfigPath(""))

	require.NoError(t, os.WriteFile("minutes.yaml", []byte("{}"), 0o600))
	assert.Equal(t, "minutes.yaml", resolveConfigPath(""))

	t.Setenv("MINUTES_CONFIG", "/etc/minutes.yaml")
	assert.Equal(t, "/etc/minutes.yaml", resolveConfigPath(""))
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minutes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_provider: groq\n"), 0o600))
	t.Setenv("MINUTES_API_KEY", "sk-env")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "groq", cfg.DefaultProvider)
	assert.Equal(t, "sk-env", cfg.APIKey)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Please enter some meeting notes to summarize.",
		userMessage(apierror.Validation("Please enter some meeting notes to summarize.")))
	assert.Equal(t, "plain", userMessage(errors.New("plain")))
}

func TestRun_RejectsUnknownFormat(t *testing.T) {
	err := run(options{format: "yaml"})
	assert.ErrorContains(t, err, `unknown format "yaml"`)
}
