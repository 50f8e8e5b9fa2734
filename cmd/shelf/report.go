package main

import (
	"fmt"

	"shelf/internal/tui"
	"shelf/pkg/types"

	"github.com/spf13/cobra"
)

// maxPreview is how many planned moves the confirmation dialog shows.
const maxPreview = 5

// previewLines renders the first few planned moves for the confirmation
// dialog, ending with a count of what is not shown.
func previewLines(items []types.PlanItem) []string {
	var lines []string
	for i, item := range items {
		if i == maxPreview {
			lines = append(lines, msgs.Get("plan_more", len(items)-maxPreview))
			break
		}
		lines = append(lines, item.String())
	}
	return lines
}

// reversePreviewLines is previewLines for a reverse pass.
func reversePreviewLines(items []types.ReverseItem) []string {
	var lines []string
	for i, item := range items {
		if i == maxPreview {
			lines = append(lines, msgs.Get("plan_more", len(items)-maxPreview))
			break
		}
		lines = append(lines, item.String())
	}
	return lines
}

// confirmMoves asks the user to approve count moves, previewing lines.
func confirmMoves(count int, lines []string) (bool, error) {
	return tui.Confirm(msgs.Get("confirm_prompt", count), lines)
}

// printReport writes the outcome of an execution. Verbose mode lists every
// item, otherwise only failures are shown before the summary.
func printReport(cmd *cobra.Command, report *types.ExecutionReport) {
	out := cmd.OutOrStdout()

	for _, res := range report.Results {
		switch res.Outcome {
		case types.Moved:
			if cfg.Settings.Verbose {
				fmt.Fprintln(out, "  "+successText(res.Source+" -> "+res.Destination))
			}
		case types.Skipped:
			if cfg.Settings.Verbose {
				fmt.Fprintln(out, "  "+warningText(res.Source+": "+res.Reason))
			}
		case types.Failed:
			fmt.Fprintln(out, "  "+errorText(fmt.Sprintf("%s: %v", res.Source, res.Err)))
		}
	}

	moved, skipped, failed := report.Counts()
	fmt.Fprintln(out, msgs.Get("moved_summary", moved))
	fmt.Fprintln(out, msgs.Get("skipped_summary", skipped))
	if failed > 0 {
		fmt.Fprintln(out, errorText(msgs.Get("failed_summary", failed)))
	}

	if cfg.Settings.DryRun {
		fmt.Fprintln(out, msgs.Get("dry_run_done"))
	} else {
		fmt.Fprintln(out, successText(msgs.Get("done")))
	}
}
