package filediscovery

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpbench/docgen/pkg/utils"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func testLogger() (*utils.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return utils.NewLogger(&buf, &bytes.Buffer{}, strings.NewReader(""), true), &buf
}

func TestNewTaskSource(t *testing.T) {
	src := NewTaskSource(filepath.Join("docs", "tasks", "github", "34_.mdx"))
	assert.Equal(t, TaskSource{
		ID:         "34",
		Dir:        filepath.Join("docs", "tasks", "github"),
		SourcePath: filepath.Join("docs", "tasks", "github", "34_.mdx"),
		TargetPath: filepath.Join("docs", "tasks", "github", "34.mdx"),
		LogDir:     filepath.Join("docs", "tasks", "github", "34"),
	}, src)
}

func TestFindTaskSources(t *testing.T) {
	root := t.TempDir()
	tasks := filepath.Join(root, "docs", "tasks")
	writeFile(t, filepath.Join(tasks, "web", "9_.mdx"), "nine")
	writeFile(t, filepath.Join(tasks, "github", "34_.mdx"), "thirty-four")
	writeFile(t, filepath.Join(tasks, "github", "34.mdx"), "generated")
	writeFile(t, filepath.Join(tasks, "github", "34__.mdx"), "legacy")
	writeFile(t, filepath.Join(tasks, "github", "34", "claude.json"), "{}")
	writeFile(t, filepath.Join(tasks, "archive", "1_.mdx"), "old")
	writeFile(t, filepath.Join(root, ".docgen", "ignore"), "archive\n")

	logger, _ := testLogger()
	sources, err := NewTaskFinder(root, logger).FindTaskSources(tasks, "__.mdx")
	require.NoError(t, err)

	require.Len(t, sources, 2)
	assert.Equal(t, "34", sources[0].ID)
	assert.Equal(t, filepath.Join(tasks, "github", "34.mdx"), sources[0].TargetPath)
	assert.Equal(t, "9", sources[1].ID)
}

func TestFindTaskSourcesMissingDir(t *testing.T) {
	logger, _ := testLogger()
	_, err := NewTaskFinder(t.TempDir(), logger).FindTaskSources(filepath.Join(t.TempDir(), "absent"), "__.mdx")
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrFileSystem)
}

func TestClearLegacy(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "1__.mdx"), "legacy")
	writeFile(t, filepath.Join(root, "a", "1_.mdx"), "source")
	writeFile(t, filepath.Join(root, "b", "2__.mdx"), "legacy")

	logger, buf := testLogger()
	deleted, err := NewTaskFinder(root, logger).ClearLegacy(root, "__.mdx")
	require.NoError(t, err)

	assert.Len(t, deleted, 2)
	assert.NoFileExists(t, filepath.Join(root, "a", "1__.mdx"))
	assert.NoFileExists(t, filepath.Join(root, "b", "2__.mdx"))
	assert.FileExists(t, filepath.Join(root, "a", "1_.mdx"))
	assert.Contains(t, buf.String(), "Operation: delete")

	_, err = NewTaskFinder(root, logger).ClearLegacy(root, "")
	assert.ErrorIs(t, err, utils.ErrValidation)
}
