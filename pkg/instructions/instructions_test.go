package instructions

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpbench/docgen/pkg/taskmap"
	"github.com/mcpbench/docgen/pkg/utils"
)

func TestReplaceSection(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		inst  string
		want  string
		found bool
	}{
		{
			name:  "middle section",
			page:  "# T\n\n## Instruction\nold text\nmore\n\n## Model Trajectory\nx\n",
			want:  "# T\n\n## Instruction\nNEW\n\n## Model Trajectory\nx\n",
			found: true,
		},
		{
			name:  "last section",
			page:  "## Instruction  \n\nold\n",
			want:  "## Instruction  \n\nNEW\n",
			found: true,
		},
		{
			name: "no section",
			page: "## Overview\nbody\n",
			want: "## Overview\nbody\n",
		},
		{
			name:  "subheadings stay in the body",
			page:  "## Instruction\nold\n### detail\nmore\n## Next\n",
			want:  "## Instruction\nNEW\n\n## Next\n",
			found: true,
		},
		{
			name:  "backslashes are literal",
			page:  "## Instruction\nold",
			inst:  "C:\\path \\1",
			want:  "## Instruction\nC:\\path \\1\n",
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := tt.inst
			if inst == "" {
				inst = "NEW"
			}
			got, found := ReplaceSection(tt.page, inst)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestUpdaterRun(t *testing.T) {
	root := t.TempDir()
	opts := Options{DocsRoot: filepath.Join(root, "docs"), InstructionsRoot: filepath.Join(root, "finalpool")}
	entries := []taskmap.Entry{
		{Name: "find-issues", ID: "34", Category: "github"},
		{Name: "plain", ID: "35", Category: "github"},
	}
	write := func(path, content string) {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	write(entries[0].SourcePath(opts.DocsRoot), "## Instruction\nold\n\n## Trajectory\n")
	write(filepath.Join(opts.InstructionsRoot, "find-issues", "docs", "task.md"), "Find the issues.")
	write(entries[1].SourcePath(opts.DocsRoot), "no section\n")
	write(filepath.Join(opts.InstructionsRoot, "plain", "docs", "task.md"), "ignored")

	var console bytes.Buffer
	u := New(opts, utils.NewLogger(&bytes.Buffer{}, &console, strings.NewReader(""), true))
	n, err := u.Run(entries)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, console.String(), "find-issues 34 github")

	data, err := os.ReadFile(entries[0].SourcePath(opts.DocsRoot))
	require.NoError(t, err)
	assert.Equal(t, "## Instruction\nFind the issues.\n\n## Trajectory\n", string(data))
}

func TestUpdaterMissingInstruction(t *testing.T) {
	root := t.TempDir()
	opts := Options{DocsRoot: root, InstructionsRoot: filepath.Join(root, "none")}
	entry := taskmap.Entry{Name: "x", ID: "1", Category: "c"}
	require.NoError(t, os.MkdirAll(filepath.Dir(entry.SourcePath(root)), 0755))
	require.NoError(t, os.WriteFile(entry.SourcePath(root), []byte("## Instruction\n"), 0644))

	u := New(opts, utils.NewLogger(&bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader(""), true))
	_, err := u.Update(entry)
	assert.ErrorIs(t, err, utils.ErrFileSystem)
}
