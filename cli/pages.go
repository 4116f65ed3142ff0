package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const cliSession = "cli"

func newPagesCmd(opts *rootOptions) *cobra.Command {
	var (
		all             bool
		keepCredentials bool
	)

	cmd := &cobra.Command{
		Use:   "pages [page|next|prev]",
		Short: "Print pages of the command list",
		Long: `Refresh the command list from the dashboard and print one page of it,
or every page with --all.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := refreshService(cmd, opts, keepCredentials)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if all {
				fmt.Fprintln(out, strings.Join(svc.Pages(), "\n\n"))
				return nil
			}

			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			fmt.Fprintln(out, svc.Page(cliSession, arg))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print every page")
	cmd.Flags().BoolVar(&keepCredentials, "keep-credentials", false, "Do not clear the dashboard credentials after a successful refresh")

	return cmd
}
