// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/labkit/scenario"
)

func (c *cli) runScenarios(cmd *cobra.Command, args []string) error {
	files := make([]*scenario.File, 0, len(args))
	for _, path := range args {
		f, err := scenario.Load(path)
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	return c.runAll(cmd.OutOrStdout(), files)
}

func (c *cli) runExamples(cmd *cobra.Command, _ []string) error {
	files, err := scenario.Examples()
	if err != nil {
		return err
	}

	return c.runAll(cmd.OutOrStdout(), files)
}

func (c *cli) validateScenarios(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, path := range args {
		f, err := scenario.Load(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: ok (%s, %d steps)\n", path, f.Name, len(f.Steps))
	}

	return nil
}

// runAll runs every file, printing each report; it keeps going after a
// failing scenario and reports the failure once at the end.
func (c *cli) runAll(out io.Writer, files []*scenario.File) error {
	opts := []scenario.RunOption{scenario.WithLogger(c.log)}
	if c.failFast {
		opts = append(opts, scenario.WithFailFast())
	}

	failed := 0
	for i, f := range files {
		if i > 0 {
			fmt.Fprintln(out)
		}
		rep, err := scenario.Run(f, opts...)
		if err != nil {
			return err
		}
		if err := rep.WriteText(out); err != nil {
			return err
		}
		if !rep.Passed() {
			failed++
		}
	}
	c.log.Info("run complete", zap.Int("scenarios", len(files)), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%w (%d of %d scenarios)", errScenarioFailed, failed, len(files))
	}

	return nil
}
