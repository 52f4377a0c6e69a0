package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/codechunk/internal/chunker"
	"github.com/dshills/codechunk/internal/ingester"
)

func setRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("CODECHUNK_ROOT", root)
	return root
}

func TestLoad_Defaults(t *testing.T) {
	root := setRoot(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, root, cfg.RootPath)
	assert.Equal(t, "", cfg.OutputPath)
	assert.Equal(t, chunker.DefaultMaxLines, cfg.MaxLines)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, ingester.DefaultMinChunkChars, cfg.MinChunkChars)
	assert.Nil(t, cfg.IncludeExts)
	assert.Equal(t, ingester.DefaultExcludeDirs, cfg.ExcludeDirs)
}

func TestLoad_Overrides(t *testing.T) {
	setRoot(t)
	t.Setenv("CODECHUNK_OUTPUT", "chunks.jsonl")
	t.Setenv("CODECHUNK_MAX_LINES", "120")
	t.Setenv("CODECHUNK_WORKERS", "8")
	t.Setenv("CODECHUNK_MIN_CHARS", "25")
	t.Setenv("CODECHUNK_INCLUDE_EXTS", ".py, .md")
	t.Setenv("CODECHUNK_EXCLUDE_DIRS", "target,out")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "chunks.jsonl", cfg.OutputPath)
	assert.Equal(t, 120, cfg.MaxLines)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 25, cfg.MinChunkChars)
	assert.Equal(t, []string{".py", ".md"}, cfg.IncludeExts)
	assert.Equal(t, []string{"target", "out"}, cfg.ExcludeDirs)
}

func TestLoad_InvalidInteger(t *testing.T) {
	setRoot(t)
	t.Setenv("CODECHUNK_MAX_LINES", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CODECHUNK_MAX_LINES")
}

func TestLoad_NonPositiveMaxLines(t *testing.T) {
	setRoot(t)
	t.Setenv("CODECHUNK_MAX_LINES", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CODECHUNK_MAX_LINES")
}

func TestLoad_MissingRoot(t *testing.T) {
	t.Setenv("CODECHUNK_ROOT", "/nonexistent/root")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CODECHUNK_ROOT")
}

func TestIngesterConfig(t *testing.T) {
	setRoot(t)
	t.Setenv("CODECHUNK_WORKERS", "3")
	t.Setenv("CODECHUNK_INCLUDE_EXTS", ".py")

	cfg, err := Load()
	require.NoError(t, err)

	ic := cfg.IngesterConfig()
	assert.Equal(t, 3, ic.Workers)
	assert.Equal(t, chunker.DefaultMaxLines, ic.MaxLines)
	assert.Equal(t, []string{".py"}, ic.IncludeExts)
	assert.Equal(t, ingester.DefaultExcludeDirs, ic.ExcludeDirs)
}
