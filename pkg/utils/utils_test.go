package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.mdx")
	require.NoError(t, os.WriteFile(path, []byte("body"), 0644))

	backup, err := CreateBackup(path)
	require.NoError(t, err)
	assert.Equal(t, path+".backup", backup)

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "body", string(data))

	_, err = CreateBackup(filepath.Join(t.TempDir(), "missing.mdx"))
	assert.ErrorIs(t, err, ErrFileSystem)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFormatError(t *testing.T) {
	err := NewFileSystemError("write", "docs/tasks/a/1.mdx", errors.New("disk full"))
	assert.Equal(t,
		"Error [FS_ERROR]: Filesystem error during write | Operation: write | Resource: docs/tasks/a/1.mdx | Root Cause: disk full",
		FormatError(err))
	assert.Equal(t, "plain", FormatError(errors.New("plain")))

	wrapped := fmt.Errorf("task 12: %w", NewConfigError("docgen.json", err).WithComponent("cmd"))
	assert.Equal(t,
		"Error [CFG_ERROR]: Configuration error for docgen.json | Component: cmd | Resource: docgen.json | Root Cause: "+err.Error(),
		FormatError(wrapped))
	assert.ErrorIs(t, wrapped, ErrConfig)
	assert.ErrorIs(t, wrapped, ErrFileSystem)
	assert.NotErrorIs(t, wrapped, ErrValidation)
	assert.ErrorIs(t, NewValidationError("map", "bad line"), ErrValidation)
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "Rendered Pages", CapitalizeWords("rendered pages"))
	assert.Equal(t, "512 B", FormatFileSize(512))
	assert.Equal(t, "1.5 KB", FormatFileSize(1536))
	assert.Equal(t, "abc...", TruncateString("abcdefghij", 6))
	assert.Equal(t, "a b", TruncateString("a\nb", 10))
	assert.Equal(t, "", TruncateString("abc", -1))
}
