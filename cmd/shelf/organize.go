package main

import (
	"fmt"

	"shelf/cmd/shelf/cli"
	"shelf/internal/errors"
	"shelf/internal/organize"
	"shelf/internal/plan"

	"github.com/spf13/cobra"
)

// NewOrganizeCmd creates the organize command
func NewOrganizeCmd() *cobra.Command {
	var (
		separator    string
		removePrefix bool
		dryRun       bool
		yes          bool
		onConflict   string
		openAfter    bool
	)

	cmd := &cobra.Command{
		Use:   "organize [directory]",
		Short: "Move files into folders named after their prefixes",
		Long: `Organize looks at every file directly inside the directory, takes
the part of its name before the first separator and moves the file
into a folder of that name. Files without a separator, or with
nothing before it, stay where they are.

Existing files are never overwritten. A move whose destination is
taken is skipped, or renamed with a numbered suffix when
--on-conflict=rename is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := targetDir(args)

			if cmd.Flags().Changed("separator") {
				cfg.Organize.Separator = separator
			}
			if cmd.Flags().Changed("remove-prefix") {
				cfg.Organize.RemovePrefix = removePrefix
			}
			if cmd.Flags().Changed("on-conflict") {
				cfg.Organize.OnConflict = onConflict
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

			files, err := organize.ListFiles(dir)
			if err != nil {
				return err
			}

			p := planner.Forward(files)
			out := cmd.OutOrStdout()
			if p.Empty() {
				fmt.Fprintln(out, msgs.Get("plan_empty"))
				return nil
			}

			fmt.Fprintln(out, bold(msgs.Get("plan_header", dir)))
			for _, item := range p.Items {
				fmt.Fprintln(out, "  "+msgs.Get("plan_move", item.SourceName, item.DestinationPath()))
			}
			if n := len(p.Skipped); n > 0 {
				fmt.Fprintln(out, infoText(msgs.Get("plan_left_in_place", n)))
			}

			if cfg.Settings.DryRun {
				fmt.Fprintln(out, warningText(msgs.Get("dry_run_notice")))
			} else if !cfg.Settings.AutoConfirm {
				ok, err := confirmMoves(len(p.Items), previewLines(p.Items))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, msgs.Get("confirm_cancelled"))
					return nil
				}
			}

			engine := organize.NewWithConfig(cfg)
			report := engine.Apply(p.Items, dir)
			printReport(cmd, report)

			if openAfter && !cfg.Settings.DryRun {
				if err := openFolder(dir); err != nil {
					cli.PrintWarning(fmt.Sprintf("Could not open %s: %v", dir, err))
				}
			}

			if _, _, failed := report.Counts(); failed > 0 {
				return errors.Newf("%d file(s) could not be moved", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&separator, "separator", "s", "-", "character separating the prefix from the rest of the name")
	cmd.Flags().BoolVarP(&removePrefix, "remove-prefix", "r", false, "strip the prefix and separator from moved files")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would happen without moving anything")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().StringVar(&onConflict, "on-conflict", "skip", "what to do when the destination exists (skip or rename)")
	cmd.Flags().BoolVar(&openAfter, "open", false, "open the directory in the file manager afterwards")

	return cmd
}
