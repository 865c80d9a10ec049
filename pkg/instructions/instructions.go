package instructions

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mcpbench/docgen/pkg/taskmap"
	"github.com/mcpbench/docgen/pkg/utils"
)

var headingPattern = regexp.MustCompile(`## Instruction\s*\n`)

const nextHeading = "\n## "

// ReplaceSection replaces the body of every "## Instruction" section with
// instruction followed by a newline. A body runs up to the next "## " heading
// or the end of the page. It reports whether any section was found.
func ReplaceSection(page, instruction string) (string, bool) {
	var b strings.Builder
	found := false
	rest := page
	for {
		loc := headingPattern.FindStringIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			break
		}
		found = true
		body := rest[loc[1]:]
		end := strings.Index(body, nextHeading)
		if end < 0 {
			end = len(body)
		}
		b.WriteString(rest[:loc[1]])
		b.WriteString(instruction)
		b.WriteString("\n")
		rest = body[end:]
	}
	return b.String(), found
}

// Options locate the pages and the benchmark's task instructions.
type Options struct {
	DocsRoot         string
	InstructionsRoot string
}

// Updater refreshes the instruction section of task pages.
type Updater struct {
	opts   Options
	logger *utils.Logger
}

// New creates an updater.
func New(opts Options, logger *utils.Logger) *Updater {
	return &Updater{opts: opts, logger: logger}
}

// InstructionPath is where the benchmark keeps the instruction of a task.
func (u *Updater) InstructionPath(entry taskmap.Entry) string {
	return filepath.Join(u.opts.InstructionsRoot, entry.Name, "docs", "task.md")
}

// Update rewrites the page source of one task. It reports whether the page
// had an instruction section.
func (u *Updater) Update(entry taskmap.Entry) (bool, error) {
	pagePath := entry.SourcePath(u.opts.DocsRoot)
	page, err := os.ReadFile(pagePath)
	if err != nil {
		return false, utils.NewFileSystemError("read", pagePath, err)
	}
	instPath := u.InstructionPath(entry)
	inst, err := os.ReadFile(instPath)
	if err != nil {
		return false, utils.NewFileSystemError("read", instPath, err)
	}

	updated, found := ReplaceSection(string(page), string(inst))
	if !found {
		u.logger.Logf("No instruction section in %s", pagePath)
		return false, nil
	}
	info, err := os.Stat(pagePath)
	if err != nil {
		return false, utils.NewFileSystemError("stat", pagePath, err)
	}
	if err := os.WriteFile(pagePath, []byte(updated), info.Mode().Perm()); err != nil {
		return false, utils.NewFileSystemError("write", pagePath, err)
	}
	u.logger.LogWorkspaceOperation("write", pagePath)
	return true, nil
}

// Run updates the given entries in order, stopping at the first error.
func (u *Updater) Run(entries []taskmap.Entry) (int, error) {
	updated := 0
	for _, entry := range entries {
		u.logger.LogProcessStep(fmt.Sprintf("%s %s %s", entry.Name, entry.ID, entry.Category))
		ok, err := u.Update(entry)
		if err != nil {
			return updated, err
		}
		if ok {
			updated++
		}
	}
	return updated, nil
}
