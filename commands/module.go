package commands

import (
	"sort"
	"strings"
)

// CommandInfo holds detailed information about a command
type CommandInfo struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
	Usage       string   `json:"usage"`
	Category    string   `json:"category"`
	AdminOnly   bool     `json:"admin_only"`
}

// ModuleInfo represents a complete module with its commands and metadata
type ModuleInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Version     string        `json:"version"`
	Author      string        `json:"author"`
	Category    string        `json:"category"`
	Commands    []CommandInfo `json:"commands"`
}

var (
	RegisteredModules = make(map[string]*ModuleInfo)
	CommandDetails    = make(map[string]CommandInfo) // Auto-compiled from modules
)

// RegisterModule registers a complete module and auto-compiles command info
func RegisterModule(module *ModuleInfo) {
	RegisteredModules[module.Name] = module

	for _, cmd := range module.Commands {
		if cmd.Category == "" {
			cmd.Category = module.Category
		}
		CommandDetails[cmd.Name] = cmd
	}
}

// GetCommandInfo returns the details of a command, accepting aliases.
func GetCommandInfo(name string) (CommandInfo, bool) {
	info, ok := CommandDetails[ResolveName(name)]
	return info, ok
}

// GetModuleByCommand returns the module that contains a specific command
func GetModuleByCommand(commandName string) *ModuleInfo {
	for _, module := range RegisteredModules {
		for _, cmd := range module.Commands {
			if cmd.Name == commandName {
				return module
			}
		}
	}
	return nil
}

// GetAllCommands returns every registered command sorted by category then name.
func GetAllCommands() []CommandInfo {
	cmds := make([]CommandInfo, 0, len(CommandDetails))
	for _, cmd := range CommandDetails {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		ci, cj := strings.ToLower(cmds[i].Category), strings.ToLower(cmds[j].Category)
		if ci != cj {
			return ci < cj
		}
		return cmds[i].Name < cmds[j].Name
	})
	return cmds
}
