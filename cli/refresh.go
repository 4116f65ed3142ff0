package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"HelpMenu/bot"
	"HelpMenu/menu"
)

// cliLabels points the rendered navigation hints at this CLI instead of the chat commands.
var cliLabels = menu.Labels{
	ListCommand:    "helpmenu-cli pages",
	RefreshCommand: "helpmenu-cli refresh",
	CommandPrefix:  "/",
}

func newRefreshCmd(opts *rootOptions) *cobra.Command {
	var keepCredentials bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch the command list from the dashboard and report the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := refreshService(cmd, opts, keepCredentials)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d commands into %d pages.\n", svc.TotalItems(), svc.PageCount())
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepCredentials, "keep-credentials", false, "Do not clear the dashboard credentials after a successful refresh")

	return cmd
}

// refreshService builds a service from the loaded config and refreshes it once.
func refreshService(cmd *cobra.Command, opts *rootOptions, keepCredentials bool) (*menu.Service, error) {
	cfg := opts.cfg
	if cfg == nil {
		return nil, errors.New("configuration not loaded")
	}

	svc := bot.NewService(cfg, menu.Options{Debug: keepCredentials, Labels: cliLabels})

	res := svc.Refresh(cmd.Context())
	if !res.OK {
		return nil, fmt.Errorf("refresh failed: %s", res.Message)
	}
	return svc, nil
}
