// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/labkit/internal/logging"
)

// errScenarioFailed signals that at least one step failed; the report has
// already been printed, so main only sets the exit code.
var errScenarioFailed = errors.New("one or more scenario steps failed")

// cli holds flag values and the logger shared by the subcommands.
type cli struct {
	logLevel  string
	logFormat string
	failFast  bool

	log *zap.Logger
}

// newRootCmd builds the labsim command tree.
func newRootCmd() *cobra.Command {
	c := &cli{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "labsim",
		Short: "Replay example checks against the labkit simulated objects",
		Long: `labsim runs YAML scenarios against the elevator, pen, water mixer
and spell objects and reports which expectations hold.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(c.logLevel, c.logFormat)
			if err != nil {
				return err
			}
			c.log = l.Named("labsim")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", logging.FormatConsole, "log format: console or json")

	runCmd := &cobra.Command{
		Use:   "run FILE...",
		Short: "Run scenario files and print a report for each",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.runScenarios,
	}
	runCmd.Flags().BoolVar(&c.failFast, "fail-fast", false, "stop each scenario at its first failing step")

	validateCmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Parse and validate scenario files without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.validateScenarios,
	}

	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "Run the bundled scenarios reproducing the lab examples",
		Args:  cobra.NoArgs,
		RunE:  c.runExamples,
	}
	examplesCmd.Flags().BoolVar(&c.failFast, "fail-fast", false, "stop each scenario at its first failing step")

	root.AddCommand(runCmd, validateCmd, examplesCmd)

	return root
}
