package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "HelpMenu/commands/helpmenu"
	"HelpMenu/config"
)

// options shared by every subcommand
type rootOptions struct {
	envFile  string
	logLevel string
	cfg      *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "helpmenu-cli",
		Short: "HelpMenu CLI - preview the dashboard command list",
		Long: `A CLI tool for operators of the HelpMenu bot.
Fetches the command list from the dashboard and prints the same pages the bot serves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = opts.logLevel
			}
			config.InitLoggerTo(cmd.ErrOrStderr(), level)
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Path to the .env file (default $HELPMENU_ENV_FILE or .env)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newRefreshCmd(opts))
	rootCmd.AddCommand(newPagesCmd(opts))
	rootCmd.AddCommand(newListCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
