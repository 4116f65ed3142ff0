package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"HelpMenu/commands"
)

func newListCmd() *cobra.Command {
	var (
		listModules  bool
		listCommands bool
		filterModule string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the bot's own modules and chat commands",
		Long:  `Display the modules compiled into the bot and the chat commands they register.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modules := commands.RegisteredModules

			// Filter by module if specified
			if filterModule != "" {
				module, exists := modules[filterModule]
				if !exists {
					return fmt.Errorf("module '%s' not found", filterModule)
				}
				modules = map[string]*commands.ModuleInfo{filterModule: module}
			}

			out := cmd.OutOrStdout()
			switch {
			case listModules:
				displayModules(out, modules)
			case listCommands:
				displayCommands(out, modules)
			default:
				displayModulesAndCommands(out, modules)
			}
			return nil
		},
	}

	// list reads the compiled-in registry only and needs no configuration
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error { return nil }

	cmd.Flags().BoolVarP(&listModules, "modules", "m", false, "List only modules")
	cmd.Flags().BoolVarP(&listCommands, "commands", "c", false, "List only commands")
	cmd.Flags().StringVarP(&filterModule, "filter", "f", "", "Filter by module name")

	return cmd
}

func sortedModuleNames(modules map[string]*commands.ModuleInfo) []string {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func displayModules(out io.Writer, modules map[string]*commands.ModuleInfo) {
	fmt.Fprintln(out, "Available Modules:")
	fmt.Fprintln(out)

	for _, name := range sortedModuleNames(modules) {
		module := modules[name]
		fmt.Fprintf(out, "  %s v%s\n", name, module.Version)
		fmt.Fprintf(out, "    %s\n", module.Description)
		fmt.Fprintf(out, "    Author: %s\n", module.Author)
		fmt.Fprintf(out, "    Commands: %d\n", len(module.Commands))
		fmt.Fprintln(out)
	}
}

func displayCommands(out io.Writer, modules map[string]*commands.ModuleInfo) {
	fmt.Fprintln(out, "Available Commands:")
	fmt.Fprintln(out)

	for _, name := range sortedModuleNames(modules) {
		for _, command := range modules[name].Commands {
			fmt.Fprintf(out, "  %s\n", formatCommand(command))
		}
	}
}

func displayModulesAndCommands(out io.Writer, modules map[string]*commands.ModuleInfo) {
	for _, name := range sortedModuleNames(modules) {
		module := modules[name]
		fmt.Fprintf(out, "%s v%s (%s)\n", name, module.Version, module.Category)
		fmt.Fprintf(out, "  %s\n", module.Description)
		for _, command := range module.Commands {
			fmt.Fprintf(out, "    %s\n", formatCommand(command))
		}
		fmt.Fprintln(out)
	}
}

func formatCommand(command commands.CommandInfo) string {
	line := fmt.Sprintf("%-28s %s", command.Usage, command.Description)
	if len(command.Aliases) > 0 {
		line += fmt.Sprintf(" (aliases: %s)", strings.Join(command.Aliases, ", "))
	}
	if command.AdminOnly {
		line += " [admin]"
	}
	return line
}
