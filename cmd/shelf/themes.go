package main

import (
	"fmt"

	"shelf/cmd/shelf/cli"
	"shelf/internal/config"
	"shelf/internal/errors"

	"github.com/spf13/cobra"
)

// NewThemesCmd creates the themes command
func NewThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListThemes() {
				marker := "  "
				if name == cfg.Theme.Name {
					marker = "* "
				}
				fmt.Fprintln(out, marker+cli.Sample(name))
			}
			return nil
		},
	}

	cmd.AddCommand(newThemesSetCmd())

	return cmd
}

func newThemesSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name>",
		Short: "Pick a theme and save it to the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !knownTheme(name) {
				return errors.NewConfigError("unknown theme", name, errors.InvalidTheme, nil)
			}

			cfg.ApplyTheme(name)
			cli.Apply(cfg)

			path := cfgFile
			if path == "" {
				var err error
				path, err = config.DefaultConfigPath()
				if err != nil {
					return errors.Wrap(err, "resolving config path")
				}
			}
			if err := config.SaveConfig(cfg, path); err != nil {
				return err
			}

			cli.PrintSuccess("Theme set to " + name)
			return nil
		},
	}
}

func knownTheme(name string) bool {
	for _, t := range config.ListThemes() {
		if t == name {
			return true
		}
	}
	return false
}
