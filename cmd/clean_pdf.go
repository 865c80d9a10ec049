package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpbench/docgen/pkg/pdfclean"
)

var cleanPDFCmd = newCleanPDFCommand()

func newCleanPDFCommand() *BaseCommand {
	base := NewBaseCommand(
		"clean-pdf <file>",
		"Clean PDF-extracted text in a page's code blocks",
		`Cleans the json and text code blocks of an MDX page: leftover escapes,
letters and digits spread apart by spaces, broken e-mail addresses, runs of
blank lines and padded lines. A .backup copy of the file is written first.`,
	)
	base.GetCommand().Args = cobra.ExactArgs(1)
	noBackup := base.AddBoolFlag("no-backup", false, "Do not write a .backup copy")

	base.SetRunFunc(func(c *CommandConfig, args []string) error {
		path := args[0]
		c.Logger.LogProcessStep(fmt.Sprintf("Cleaning %s", path))
		backup, err := pdfclean.CleanFile(path, !*noBackup)
		if err != nil {
			return err
		}
		if backup != "" {
			c.Logger.LogProcessStep(fmt.Sprintf("Backup written to %s", backup))
		}
		c.Logger.LogWorkspaceOperation("clean", path)
		c.Logger.LogProcessStep(fmt.Sprintf("Cleaned %s", path))
		return nil
	})
	return base
}
