package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	assert.Equal(t, DefaultMaxHistory, cfg.Editor.MaxHistory)
	assert.True(t, cfg.Editor.Highlight)
	assert.True(t, cfg.Editor.WatchFile)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[editor]
tab_width = 8
max_history = 50
highlight = false
lexer = "Go"

[logger]
log_level = "debug"
enabled_tags = ["undo", "buffer"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Editor.TabWidth)
	assert.Equal(t, 50, cfg.Editor.MaxHistory)
	assert.False(t, cfg.Editor.Highlight)
	assert.Equal(t, "Go", cfg.Editor.Lexer)
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"undo", "buffer"}, cfg.Logger.EnabledTags)
}

func TestValidateResetsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[editor]
tab_width = -1
max_history = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	assert.Equal(t, DefaultMaxHistory, cfg.Editor.MaxHistory)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
