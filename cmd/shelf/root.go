package main

import (
	"fmt"

	"shelf/cmd/shelf/cli"
	"shelf/internal/config"
	"shelf/internal/locale"
	"shelf/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	themeName string
	langCode  string
	verbose   bool

	cfg  *config.Config
	msgs *locale.Manager
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shelf",
		Short: "Shelve files into folders named after their filename prefixes",
		Long: `
::'######::'##::::'##:'########:'##:::::::'########:
'##... ##:: ##:::: ##: ##.....:: ##::::::: ##.....::
'##:::..::: ##:::: ##: ##::::::: ##::::::: ##:::::::
. ######::: #########: ######::: ##::::::: ######:::
:..... ##:: ##.... ##: ##...:::: ##::::::: ##...::::
'##::: ##:: ##:::: ##: ##::::::: ##::::::: ##:::::::
. ######::: ##:::: ##: ########: ########: ##:::::::
:......::::..:::::..::........::........::..::::::::

Shelf tidies a directory by moving files into folders named after
their filename prefixes, and can undo the whole thing again.

A file "invoice-2023.pdf" lands in the folder "invoice". What comes
before the first separator is the folder, the rest stays the name.
		`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config
			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}

			if configErr != nil {
				cli.PrintWarning(fmt.Sprintf("%v", configErr))
				cli.PrintInfo("Using default settings. Run 'shelf setup' to configure.")
				cfg = config.New()
			}

			// Flags win over the config file
			if verbose {
				cfg.Settings.Verbose = true
			}
			if themeName != "" {
				cfg.ApplyTheme(themeName)
			}
			if langCode != "" {
				cfg.Settings.Language = langCode
			}

			log.SetDebug(cfg.Settings.Verbose)
			cli.Apply(cfg)

			m, err := locale.NewManager(cfg.Settings.Language)
			if err != nil {
				cli.PrintWarning(fmt.Sprintf("%v", err))
				m, _ = locale.NewManager(locale.DefaultLanguage)
			}
			msgs = m
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/shelf/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "per file output and debug logging")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color theme for this run")
	rootCmd.PersistentFlags().StringVar(&langCode, "lang", "", "language for messages (en, tr, de, es, fr)")

	// Add subcommands
	rootCmd.AddCommand(NewOrganizeCmd())
	rootCmd.AddCommand(NewReverseCmd())
	rootCmd.AddCommand(NewScanCmd())
	rootCmd.AddCommand(NewSetupCmd())
	rootCmd.AddCommand(NewThemesCmd())

	return rootCmd
}

// targetDir resolves the directory a command should work on.
func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Directories.Default != "" {
		return cfg.Directories.Default
	}
	return "."
}
