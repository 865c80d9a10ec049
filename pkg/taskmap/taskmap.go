package taskmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcpbench/docgen/pkg/utils"
)

// Entry is one line of the task map: the benchmark task name, the id of its
// documentation page and the category directory the page lives in.
type Entry struct {
	Name     string
	ID       string
	Category string
}

// PageDir is the directory holding the task's page under docsRoot.
func (e Entry) PageDir(docsRoot string) string {
	return filepath.Join(docsRoot, "tasks", e.Category)
}

// LogDir is the directory holding the task's per-model trajectory logs.
func (e Entry) LogDir(docsRoot string) string {
	return filepath.Join(e.PageDir(docsRoot), e.ID)
}

// SourcePath is the hand-written page source of the task.
func (e Entry) SourcePath(docsRoot string) string {
	return filepath.Join(e.PageDir(docsRoot), e.ID+"_.mdx")
}

// Parse reads whitespace-separated "name id category" lines. Blank lines are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, utils.NewValidationError(fmt.Sprintf("map line %d", lineNo),
				fmt.Sprintf("expected 3 fields, got %d", len(fields)))
		}
		entries = append(entries, Entry{Name: fields[0], ID: fields[1], Category: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Load reads the task map at path.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, utils.NewFileSystemError("open", path, err)
	}
	defer f.Close()
	return Parse(f)
}
