package cmd

import (
	"fmt"
	"strings"

	"github.com/mcpbench/docgen/pkg/prepare"
	"github.com/mcpbench/docgen/pkg/taskmap"
)

var prepareCmd = newPrepareCommand()

func newPrepareCommand() *BaseCommand {
	base := NewBaseCommand(
		"prepare",
		"Copy evaluated trajectories into the docs tree",
		`Reads the task map ("name id category" per line). For every task the log
directory docs/tasks/<category>/<id>/ is emptied and refilled with one
<model>.json per configured trajectory source, with "pass" taken from the
run's eval_res.json. Missing files are reported and skipped.`,
	)
	mapFile := base.AddCustomFlag("map", "", "", "Task map file (default from config)")
	yes := base.AddBoolFlag("yes", false, "Do not ask before deleting existing log files")

	base.SetRunFunc(func(c *CommandConfig, args []string) error {
		path := c.Config.MapFile
		if *mapFile != "" {
			path = *mapFile
		}
		entries, err := taskmap.Load(path)
		if err != nil {
			return err
		}
		if len(c.Config.TrajectorySources) == 0 {
			return fmt.Errorf("no trajectory_sources configured")
		}

		if !*yes && !c.Logger.AskForConfirmation(
			fmt.Sprintf("Existing log files of %d task(s) under %s will be replaced. Continue?", len(entries), c.Config.DocsRoot), true) {
			c.Logger.LogProcessStep("Aborted.")
			return nil
		}

		c.Logger.LogProcessStep(fmt.Sprintf("Sources: %s", strings.Join(c.Config.SourceModels(), ", ")))
		p := prepare.New(prepare.Options{
			DocsRoot: c.Config.DocsRoot,
			Sources:  c.Config.TrajectorySources,
		}, c.Logger)
		results, err := p.Run(entries)
		if err != nil {
			return err
		}

		written, missing, failed := 0, 0, 0
		for _, res := range results {
			written += len(res.Written)
			missing += len(res.Missing)
			failed += len(res.Errors)
		}
		c.Logger.LogProcessStep(fmt.Sprintf("Prepared %d task(s): %d log(s) written, %d missing, %d failed",
			len(results), written, missing, failed))
		if failed > 0 {
			return fmt.Errorf("%d trajectory file(s) could not be converted", failed)
		}
		return nil
	})
	return base
}
