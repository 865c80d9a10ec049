package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mcpbench/docgen/pkg/assemble"
	"github.com/mcpbench/docgen/pkg/diffview"
	"github.com/mcpbench/docgen/pkg/filediscovery"
	"github.com/mcpbench/docgen/pkg/icons"
)

var renderCmd = newRenderCommand()

func newRenderCommand() *BaseCommand {
	base := NewBaseCommand(
		"render",
		"Render task pages from their sources and trajectory logs",
		`Finds every <id>_.mdx page source under the task directory and writes <id>.mdx
next to it. Tasks on the detailed list that have a log directory get one
collapsible section per model log with summary cards and the rendered trace.

Legacy pages (legacy_suffix in the config) are deleted first unless --keep-legacy
is given. With --dry-run nothing is written; add --diff to see what would change.`,
	)
	base.AddDryRunFlag("Build pages without writing them")
	taskDir := base.AddCustomFlag("task-dir", "d", "", "Task directory (default from config)")
	showDiff := base.AddBoolFlag("diff", false, "With --dry-run, print a diff of each page against the file on disk")
	keepLegacy := base.AddBoolFlag("keep-legacy", false, "Do not delete legacy pages before rendering")

	base.SetRunFunc(func(c *CommandConfig, args []string) error {
		dir := c.Config.TaskDir
		if *taskDir != "" {
			dir = *taskDir
		}
		return runRender(c, dir, *showDiff, *keepLegacy)
	})
	return base
}

func runRender(c *CommandConfig, taskDir string, showDiff, keepLegacy bool) error {
	cfg := c.Config
	table, err := icons.Load(cfg.IconsFile, cfg.IconBaseURL)
	if err != nil {
		return err
	}

	c.Logger.Logf("Icon table: %d server(s)", len(table.Names()))

	finder := filediscovery.NewTaskFinder(".", c.Logger)
	if !keepLegacy && !c.DryRun {
		deleted, err := finder.ClearLegacy(taskDir, cfg.LegacySuffix)
		if err != nil {
			return err
		}
		for _, path := range deleted {
			c.Logger.LogProcessStep(fmt.Sprintf("Deleted: %s", path))
		}
	}

	sources, err := finder.FindTaskSources(taskDir, cfg.LegacySuffix)
	if err != nil {
		return err
	}
	c.Logger.LogProcessStep(fmt.Sprintf("Found %d task page(s) in %s", len(sources), taskDir))

	a := assemble.New(assemble.OptionsFromConfig(cfg), table, c.Logger)
	report := a.Run(sources, c.DryRun)

	if c.DryRun && showDiff {
		color := diffview.ColorEnabled(os.Stdout)
		for _, page := range report.Pages {
			before, err := os.ReadFile(page.Source.TargetPath)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			diffview.PrintDiff(os.Stdout, page.Source.TargetPath, string(before), page.Text, color)
		}
	}

	fmt.Println(renderSummary(report, terminalWidth()))
	if len(report.Errors) > 0 {
		return fmt.Errorf("%d task(s) could not be rendered", len(report.Errors))
	}
	return nil
}
