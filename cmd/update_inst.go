package cmd

import (
	"fmt"

	"github.com/mcpbench/docgen/pkg/instructions"
	"github.com/mcpbench/docgen/pkg/taskmap"
)

var updateInstCmd = newUpdateInstCommand()

func newUpdateInstCommand() *BaseCommand {
	base := NewBaseCommand(
		"update-inst",
		"Refresh the instruction section of task pages",
		`Replaces the body of the "## Instruction" section of each task's page source
with the task's docs/task.md from the benchmark (instructions_root in the
config). Only the first task of the map is updated unless --all is given.`,
	)
	mapFile := base.AddCustomFlag("map", "", "", "Task map file (default from config)")
	all := base.AddBoolFlag("all", false, "Update every task in the map")

	base.SetRunFunc(func(c *CommandConfig, args []string) error {
		path := c.Config.MapFile
		if *mapFile != "" {
			path = *mapFile
		}
		entries, err := taskmap.Load(path)
		if err != nil {
			return err
		}
		if !*all && len(entries) > 1 {
			entries = entries[:1]
		}

		u := instructions.New(instructions.Options{
			DocsRoot:         c.Config.DocsRoot,
			InstructionsRoot: c.Config.InstructionsRoot,
		}, c.Logger)
		n, err := u.Run(entries)
		if err != nil {
			return err
		}
		c.Logger.LogProcessStep(fmt.Sprintf("Updated %d of %d page(s)", n, len(entries)))
		return nil
	})
	return base
}
