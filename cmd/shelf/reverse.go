package main

import (
	"fmt"
	"strings"

	"shelf/internal/errors"
	"shelf/internal/organize"
	"shelf/internal/plan"

	"github.com/spf13/cobra"
)

// NewReverseCmd creates the reverse command
func NewReverseCmd() *cobra.Command {
	var (
		separator     string
		restorePrefix bool
		dryRun        bool
		yes           bool
	)

	cmd := &cobra.Command{
		Use:   "reverse [directory]",
		Short: "Move files back out of their folders",
		Long: `Reverse undoes one organize pass: every file sitting directly inside
a first level folder is moved back up into the directory, and folders
that end up empty are removed.

If the files were organized with --remove-prefix, pass --restore-prefix
with the same separator so the folder name is put back in front of each
file name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := targetDir(args)

			if cmd.Flags().Changed("separator") {
				cfg.Organize.Separator = separator
			}
			if cmd.Flags().Changed("restore-prefix") {
				cfg.Organize.RemovePrefix = restorePrefix
			}
			if dryRun {
				cfg.Settings.DryRun = true
			}
			if yes {
				cfg.Settings.AutoConfirm = true
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := organize.ValidateDir(dir); err != nil {
				return err
			}

			planner, err := plan.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			subdirs, err := organize.ListSubdirs(dir)
			if err != nil {
				return err
			}

			items := planner.Reverse(subdirs)
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, msgs.Get("reverse_empty"))
				return nil
			}

			fmt.Fprintln(out, bold(msgs.Get("reverse_header", dir)))
			for _, item := range items {
				fmt.Fprintln(out, "  "+msgs.Get("plan_move", item.SourcePath(), item.RestoredName))
			}

			if cfg.Settings.DryRun {
				fmt.Fprintln(out, warningText(msgs.Get("dry_run_notice")))
			} else if !cfg.Settings.AutoConfirm {
				ok, err := confirmMoves(len(items), reversePreviewLines(items))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, msgs.Get("confirm_cancelled"))
					return nil
				}
			}

			engine := organize.NewWithConfig(cfg)
			report := engine.ApplyReverse(items, dir)
			printReport(cmd, report)

			if len(report.RemovedDirs) > 0 {
				fmt.Fprintln(out, msgs.Get("dirs_removed", strings.Join(report.RemovedDirs, ", ")))
			}
			if len(report.KeptDirs) > 0 {
				fmt.Fprintln(out, infoText(msgs.Get("dirs_kept", strings.Join(report.KeptDirs, ", "))))
			}

			if _, _, failed := report.Counts(); failed > 0 {
				return errors.Newf("%d file(s) could not be restored", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&separator, "separator", "s", "-", "separator used when the files were organized")
	cmd.Flags().BoolVarP(&restorePrefix, "restore-prefix", "r", false, "put the folder name back in front of each file name")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would happen without moving anything")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
