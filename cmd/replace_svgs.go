package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpbench/docgen/pkg/svgassets"
)

var replaceSVGsCmd = newReplaceSVGsCommand()

func newReplaceSVGsCommand() *BaseCommand {
	base := NewBaseCommand(
		"replace-svgs <file>",
		"Swap inline SVG icons for PNG images",
		`Each inline <svg> in the file is identified by the first /* ... */ comment in
the three lines above it. When the comment names a known icon (svg_icons in the
config) every copy of that SVG is replaced by a 64px <img> of the PNG.`,
	)
	base.GetCommand().Args = cobra.ExactArgs(1)

	base.SetRunFunc(func(c *CommandConfig, args []string) error {
		r := svgassets.NewReplacer(c.Config.SVGIcons, c.Config.IconBaseURL)
		done, err := r.RewriteFile(args[0])
		if err != nil {
			return err
		}
		for _, rep := range done {
			c.Logger.LogProcessStep(fmt.Sprintf("Replaced %s SVG with %s", rep.Icon, rep.Image))
		}
		c.Logger.LogProcessStep(fmt.Sprintf("%d SVG(s) replaced in %s", len(done), args[0]))
		return nil
	})
	return base
}
