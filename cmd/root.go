package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configPath string // --config, defaults to .docgen/config.json
	skipPrompt bool   // --skip-prompt
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docgen",
	Short: "Trajectory documentation generator",
	Long: `Docgen turns agent trajectory logs into the MDX task pages of the benchmark
documentation site, and carries the small maintenance utilities the site needs.

Available commands:
  render        - Render task pages from their sources and trajectory logs
  prepare       - Copy evaluated trajectories into the docs tree
  update-inst   - Refresh the instruction section of task pages
  replace-svgs  - Swap inline SVG icons for PNG images
  clean-pdf     - Clean PDF-extracted text in a page's code blocks
  log           - Show the verbose log`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is .docgen/config.json)")
	rootCmd.PersistentFlags().BoolVar(&skipPrompt, "skip-prompt", false, "Skip user confirmation prompts")

	rootCmd.AddCommand(renderCmd.GetCommand())
	rootCmd.AddCommand(prepareCmd.GetCommand())
	rootCmd.AddCommand(updateInstCmd.GetCommand())
	rootCmd.AddCommand(replaceSVGsCmd.GetCommand())
	rootCmd.AddCommand(cleanPDFCmd.GetCommand())
	rootCmd.AddCommand(logCmd)
}
