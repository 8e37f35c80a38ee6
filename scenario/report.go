// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
)

// StepResult is the graded outcome of one step.
type StepResult struct {
	Index  int // 1-based
	Target string
	Op     string
	Got    interface{}
	Err    error
	Passed bool
	Reason string // empty when Passed
}

// Report collects the results of one Run.
type Report struct {
	RunID   uuid.UUID
	Name    string
	Results []StepResult
	Skipped int // steps not executed because of fail-fast
}

// Passed reports whether every step ran and passed.
func (r *Report) Passed() bool {
	return r.Skipped == 0 && len(r.Failures()) == 0
}

// Failures returns the failing steps in order.
func (r *Report) Failures() []StepResult {
	var out []StepResult
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}

	return out
}

// Summary is a one-line tally, e.g. "lab-1: 9 passed, 1 failed, 0 skipped".
func (r *Report) Summary() string {
	failed := len(r.Failures())
	return fmt.Sprintf("%s: %d passed, %d failed, %d skipped",
		r.Name, len(r.Results)-failed, failed, r.Skipped)
}

// WriteText renders a per-step table followed by the summary line.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# %s (run %s)\n", r.Name, r.RunID)
	fmt.Fprintln(tw, "STEP\tTARGET\tOP\tRESULT\tDETAIL")
	for _, res := range r.Results {
		status, detail := "ok", formatGot(res)
		if !res.Passed {
			status, detail = "FAIL", res.Reason
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", res.Index, res.Target, res.Op, status, detail)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, r.Summary())

	return err
}

func formatGot(res StepResult) string {
	switch {
	case res.Err != nil:
		return res.Err.Error()
	case res.Got == nil:
		return "-"
	}
	if s, ok := res.Got.(string); ok {
		return fmt.Sprintf("%q", s)
	}

	return fmt.Sprint(res.Got)
}
