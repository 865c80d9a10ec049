package prepare

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mcpbench/docgen/pkg/taskmap"
	"github.com/mcpbench/docgen/pkg/utils"
)

const (
	trajectoryFile = "traj_log.json"
	evalFile       = "eval_res.json"
)

// Options locate the docs tree and the raw trajectory runs.
type Options struct {
	DocsRoot string
	// Sources maps a model name to the run directory holding one
	// subdirectory per task name.
	Sources map[string]string
}

// Result describes what happened to one task map entry.
type Result struct {
	Entry     taskmap.Entry
	TargetDir string
	Removed   int
	Written   []string
	// Missing lists companion files that did not exist; the model is skipped.
	Missing []string
	// Errors holds models whose files existed but could not be converted.
	Errors []error
}

// Preparer copies evaluated trajectories into the docs tree.
type Preparer struct {
	opts   Options
	logger *utils.Logger
}

// New creates a preparer.
func New(opts Options, logger *utils.Logger) *Preparer {
	return &Preparer{opts: opts, logger: logger}
}

func (p *Preparer) models() []string {
	models := make([]string, 0, len(p.opts.Sources))
	for model := range p.opts.Sources {
		models = append(models, model)
	}
	sort.Strings(models)
	return models
}

// Prepare rebuilds the log directory of one task. Existing files in the
// directory are removed first; subdirectories are left alone.
func (p *Preparer) Prepare(entry taskmap.Entry) (*Result, error) {
	target := entry.LogDir(p.opts.DocsRoot)
	if err := os.MkdirAll(target, 0755); err != nil {
		return nil, utils.NewFileSystemError("create", target, err)
	}

	res := &Result{Entry: entry, TargetDir: target}
	dirEntries, err := os.ReadDir(target)
	if err != nil {
		return nil, utils.NewFileSystemError("list", target, err)
	}
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		path := filepath.Join(target, de.Name())
		if err := os.Remove(path); err != nil {
			return nil, utils.NewFileSystemError("remove", path, err)
		}
		p.logger.LogWorkspaceOperation("remove", path)
		res.Removed++
	}

	for _, model := range p.models() {
		runDir := filepath.Join(p.opts.Sources[model], entry.Name)
		out := filepath.Join(target, model+".json")
		err := convert(filepath.Join(runDir, trajectoryFile), filepath.Join(runDir, evalFile), out)
		var missing *missingFileError
		switch {
		case errors.As(err, &missing):
			p.logger.LogProcessStep(fmt.Sprintf("File not found: %s", missing.path))
			res.Missing = append(res.Missing, missing.path)
		case err != nil:
			p.logger.LogError(fmt.Errorf("task %s, model %s: %w", entry.Name, model, err))
			res.Errors = append(res.Errors, fmt.Errorf("%s: %w", model, err))
		default:
			p.logger.LogWorkspaceOperation("write", out)
			res.Written = append(res.Written, out)
		}
	}
	return res, nil
}

// Run prepares every entry, stopping at the first file-system failure.
func (p *Preparer) Run(entries []taskmap.Entry) ([]*Result, error) {
	results := make([]*Result, 0, len(entries))
	for _, entry := range entries {
		p.logger.Logf("Preparing %s (%s/%s)", entry.Name, entry.Category, entry.ID)
		res, err := p.Prepare(entry)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

type missingFileError struct {
	path string
}

func (e *missingFileError) Error() string {
	return "file not found: " + e.path
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &missingFileError{path: path}
	}
	if err != nil {
		return utils.NewFileSystemError("read", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// convert copies the trajectory to out with its "pass" field taken from the
// evaluation result. Every other field of the trajectory is kept.
func convert(trajPath, evalPath, out string) error {
	var traj map[string]json.RawMessage
	if err := readJSON(trajPath, &traj); err != nil {
		return err
	}
	var eval map[string]json.RawMessage
	if err := readJSON(evalPath, &eval); err != nil {
		return err
	}
	pass, ok := eval["pass"]
	if !ok {
		return fmt.Errorf("%s has no pass field", evalPath)
	}
	if traj == nil {
		return fmt.Errorf("%s is not a JSON object", trajPath)
	}
	traj["pass"] = pass

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(traj); err != nil {
		return fmt.Errorf("failed to encode %s: %w", out, err)
	}
	if err := os.WriteFile(out, bytes.TrimRight(buf.Bytes(), "\n"), 0644); err != nil {
		return utils.NewFileSystemError("write", out, err)
	}
	return nil
}
