package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/oldmonad/readerr/internal/app"
	"github.com/oldmonad/readerr/pkg/config/env"
	"github.com/oldmonad/readerr/pkg/errors"
	"github.com/oldmonad/readerr/pkg/strategy"
	"github.com/oldmonad/readerr/pkg/utils/validator"
	"github.com/spf13/cobra"
)

// Descriptions is the one-line summary of each strategy printed by the
// strategies command.
var Descriptions = map[strategy.Name]string{
	strategy.Tagged:     "closed set of variants, each failure kind handled explicitly",
	strategy.Contextual: "one universal error carrying a chain of context frames",
	strategy.Erased:     "plain error keeping only a classification and the newest message",
}

type Command struct {
	app            app.AppRunner
	validator      validator.Validator
	configurations *env.Configurations
}

func NewCommand(appInstance app.AppRunner, v validator.Validator, configurations *env.Configurations) *Command {
	return &Command{
		app:            appInstance,
		validator:      v,
		configurations: configurations,
	}
}

func (c *Command) InitiateCommands() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "readerr",
		Short: "Compare error-reporting strategies on the same file read",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.configurations.NoColor {
				color.NoColor = true
			}
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(c.runCommand())
	rootCmd.AddCommand(c.strategiesCommand())
	return rootCmd
}

func (c *Command) runCommand() *cobra.Command {
	var (
		path       string
		strategies []string
		header     string
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Read a file with each strategy and print the errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			validPath, err := c.validator.ValidatePath(path)
			if err != nil {
				return err
			}

			selected, err := c.validator.ValidateStrategies(strategies)
			if err != nil {
				return errors.NewStrategyValidationError(err)
			}

			if err := c.app.Run(cmd.Context(), validPath, selected, header); err != nil {
				return errors.NewCommandError(cmd.Use, err)
			}
			return nil
		},
	}

	runCmd.Flags().StringVar(&path, "path", c.configurations.DemoPath, "file to read")
	runCmd.Flags().StringSliceVarP(&strategies, "strategies", "s", []string{}, "strategies to run (comma-separated or multiple flags), default all")
	runCmd.Flags().StringVar(&header, "header", "", "expected first line, checked by the tagged strategy after a successful read")
	return runCmd
}

func (c *Command) strategiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := c.validator.ValidateStrategies(nil)
			if err != nil {
				return err
			}
			for _, s := range all {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s%s\n", s, Descriptions[s])
			}
			return nil
		},
	}
}
