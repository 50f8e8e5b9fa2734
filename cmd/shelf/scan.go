package main

import (
	"fmt"
	"os"
	"path/filepath"

	"shelf/internal/organize"
	"shelf/internal/plan"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	var (
		separator    string
		removePrefix bool
		jsonOut      bool
		long         bool
	)

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Preview how files would be grouped without touching anything",
		Long: `Scan builds the same plan organize would and prints it grouped by
destination folder. Nothing on disk is changed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := targetDir(args)

			if cmd.Flags().Changed("separator") {
				cfg.Organize.Separator = separator
			}
			if cmd.Flags().Changed("remove-prefix") {
				cfg.Organize.RemovePrefix = removePrefix
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

			if jsonOut {
				fmt.Fprintln(out, p.ToJSON())
				return nil
			}

			if p.Empty() {
				fmt.Fprintln(out, msgs.Get("plan_empty"))
				return nil
			}

			fmt.Fprintln(out, bold(msgs.Get("plan_header", dir)))

			// Group by destination folder, keeping first appearance order.
			var order []string
			groups := make(map[string][]string)
			for _, item := range p.Items {
				line := item.DestinationName
				if item.DestinationName != item.SourceName {
					line = fmt.Sprintf("%s (from %s)", item.DestinationName, item.SourceName)
				}
				if long {
					line += "  " + emphasisText(fileSize(filepath.Join(dir, item.SourceName)))
				}
				if _, seen := groups[item.DestinationSubdir]; !seen {
					order = append(order, item.DestinationSubdir)
				}
				groups[item.DestinationSubdir] = append(groups[item.DestinationSubdir], line)
			}

			for _, subdir := range order {
				fmt.Fprintln(out, primaryText(subdir+string(os.PathSeparator)))
				for _, line := range groups[subdir] {
					fmt.Fprintln(out, "  "+line)
				}
			}

			if n := len(p.Skipped); n > 0 {
				fmt.Fprintln(out, infoText(msgs.Get("plan_left_in_place", n)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&separator, "separator", "s", "-", "character separating the prefix from the rest of the name")
	cmd.Flags().BoolVarP(&removePrefix, "remove-prefix", "r", false, "strip the prefix and separator from moved files")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the plan as JSON")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show file sizes")

	return cmd
}

// fileSize returns a human readable size for path, or an empty string when
// the file cannot be inspected.
func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return humanize.Bytes(uint64(info.Size()))
}
