package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpbench/docgen/pkg/configuration"
	"github.com/mcpbench/docgen/pkg/utils"
)

// CommandConfig represents the common configuration shared across commands
type CommandConfig struct {
	SkipPrompt bool
	DryRun     bool
	Logger     *utils.Logger
	Config     *configuration.Config
}

// BaseCommand provides common functionality for all CLI commands
type BaseCommand struct {
	cmd   *cobra.Command
	cfg   *CommandConfig
	flags CommandFlags
}

// CommandFlags defines common flags used across commands
type CommandFlags struct {
	DryRun *bool
}

// NewBaseCommand creates a new base command with common functionality
func NewBaseCommand(use, short, long string) *BaseCommand {
	return &BaseCommand{
		cmd: &cobra.Command{
			Use:   use,
			Short: short,
			Long:  long,
		},
		cfg: &CommandConfig{},
	}
}

// GetCommand returns the underlying cobra command
func (b *BaseCommand) GetCommand() *cobra.Command {
	return b.cmd
}

// AddDryRunFlag registers --dry-run on commands that can simulate their writes.
func (b *BaseCommand) AddDryRunFlag(description string) {
	b.flags.DryRun = b.cmd.Flags().Bool("dry-run", false, description)
}

// Initialize sets up common command infrastructure
func (b *BaseCommand) Initialize() error {
	cfg, err := configuration.Load(configPath)
	if err != nil {
		return utils.NewConfigError(configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return utils.NewConfigError(configPath, err)
	}

	skip := skipPrompt || cfg.SkipPrompt
	logger := utils.GetLogger(skip)
	logger.Logf("Running %s (config %q, run %s)", b.cmd.CommandPath(), configPath, logger.CorrelationID())

	b.cfg = &CommandConfig{
		SkipPrompt: skip,
		DryRun:     b.flags.DryRun != nil && *b.flags.DryRun,
		Logger:     logger,
		Config:     cfg,
	}
	return nil
}

// AddCustomFlag adds a custom flag to the command
func (b *BaseCommand) AddCustomFlag(name, shorthand, defaultValue, description string) *string {
	return b.cmd.Flags().StringP(name, shorthand, defaultValue, description)
}

// AddBoolFlag adds a custom boolean flag to the command
func (b *BaseCommand) AddBoolFlag(name string, defaultValue bool, description string) *bool {
	return b.cmd.Flags().Bool(name, defaultValue, description)
}

// SetRunFunc sets the command's run function with common initialization
func (b *BaseCommand) SetRunFunc(fn func(*CommandConfig, []string) error) {
	b.cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := b.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize command: %w", err)
		}

		if err := fn(b.cfg, args); err != nil {
			b.cfg.Logger.Log(utils.FormatError(err))
			return err
		}
		return nil
	}
}
