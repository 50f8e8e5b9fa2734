package main

import (
	"fmt"
	"os"
	"strings"

	"shelf/cmd/shelf/cli"
	"shelf/internal/config"
	"shelf/internal/errors"

	"github.com/spf13/cobra"
)

// NewSetupCmd creates the setup command
func NewSetupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write a starter configuration file",
		Long: `Setup writes a configuration file with the default settings so there
is something to edit. An existing file is only replaced with --force.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				var err error
				path, err = config.DefaultConfigPath()
				if err != nil {
					return errors.Wrap(err, "resolving config path")
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf("config already exists at %s, use --force to overwrite", path)
			}

			fresh := config.New()
			if err := config.SaveConfig(fresh, path); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.DrawLogo())
			cli.PrintSuccess("Wrote " + path)

			summary := strings.Join([]string{
				"Defaults",
				"separator:    " + fresh.Organize.Separator,
				"on_conflict:  " + fresh.Organize.OnConflict,
				"theme:        " + fresh.Theme.Name,
			}, "\n")
			fmt.Fprintln(cmd.OutOrStdout(), cli.DrawBoxWithTheme(summary))

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}
