package filediscovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/mcpbench/docgen/pkg/utils"
)

// SourceSuffix marks a hand-written task page that the generator expands.
const SourceSuffix = "_.mdx"

// TaskSource describes one task page and where its generated output and logs live.
type TaskSource struct {
	ID         string // file name without SourceSuffix
	Dir        string
	SourcePath string // <dir>/<id>_.mdx
	TargetPath string // <dir>/<id>.mdx
	LogDir     string // <dir>/<id>/
}

// NewTaskSource derives the companion paths of a source page.
func NewTaskSource(sourcePath string) TaskSource {
	dir := filepath.Dir(sourcePath)
	id := strings.TrimSuffix(filepath.Base(sourcePath), SourceSuffix)
	return TaskSource{
		ID:         id,
		Dir:        dir,
		SourcePath: sourcePath,
		TargetPath: filepath.Join(dir, id+".mdx"),
		LogDir:     filepath.Join(dir, id),
	}
}

// TaskFinder walks the task tree, skipping paths matched by the project's ignore files.
type TaskFinder struct {
	root   string
	rules  *ignore.GitIgnore
	logger *utils.Logger
}

// NewTaskFinder loads ignore rules from root. Paths are matched relative to root.
func NewTaskFinder(root string, logger *utils.Logger) *TaskFinder {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return &TaskFinder{
		root:   abs,
		rules:  GetIgnoreRules(root),
		logger: logger,
	}
}

func (f *TaskFinder) ignored(path string, isDir bool) bool {
	if f.rules == nil {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(f.root, abs)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}
	rel = filepath.ToSlash(rel)
	if f.rules.MatchesPath(rel) {
		return true
	}
	return isDir && f.rules.MatchesPath(rel+"/")
}

func (f *TaskFinder) walk(taskDir string, visit func(path string)) error {
	err := filepath.WalkDir(taskDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == taskDir {
				return err
			}
			f.logger.Logf("Skipping unreadable path %s: %v", path, err)
			return nil
		}
		if f.ignored(path, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			visit(path)
		}
		return nil
	})
	if err != nil {
		return utils.NewFileSystemError("walk", taskDir, err)
	}
	return nil
}

// FindTaskSources returns every *_.mdx page under taskDir in path order.
// Files ending in excludeSuffix (the legacy output suffix) are not sources.
func (f *TaskFinder) FindTaskSources(taskDir, excludeSuffix string) ([]TaskSource, error) {
	var sources []TaskSource
	err := f.walk(taskDir, func(path string) {
		name := filepath.Base(path)
		if !strings.HasSuffix(name, SourceSuffix) || name == SourceSuffix {
			return
		}
		if excludeSuffix != "" && strings.HasSuffix(name, excludeSuffix) {
			return
		}
		sources = append(sources, NewTaskSource(path))
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].SourcePath < sources[j].SourcePath
	})
	return sources, nil
}

// ClearLegacy deletes files ending in suffix under taskDir. Each deletion or
// failure is logged; failures do not stop the sweep.
func (f *TaskFinder) ClearLegacy(taskDir, suffix string) ([]string, error) {
	if suffix == "" {
		return nil, utils.NewValidationError("legacy_suffix", "cannot be empty")
	}
	var deleted []string
	err := f.walk(taskDir, func(path string) {
		if !strings.HasSuffix(filepath.Base(path), suffix) {
			return
		}
		if err := os.Remove(path); err != nil {
			f.logger.LogError(fmt.Errorf("failed to delete %s: %w", path, err))
			return
		}
		f.logger.LogWorkspaceOperation("delete", path)
		deleted = append(deleted, path)
	})
	return deleted, err
}
