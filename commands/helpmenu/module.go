package helpmenu

import (
	"HelpMenu/commands"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "HelpMenu",
		Description: "Paginated list of the commands registered on the dashboard",
		Version:     "1.0.0",
		Author:      "Bot Team",
		Category:    "General",
		Commands: []commands.CommandInfo{
			{
				Name:        "cmdlist",
				Aliases:     []string{"cmds"},
				Description: "Shows a page of the dashboard command list",
				Usage:       ".cmdlist [page|next|prev]",
			},
			{
				Name:        "cmdrefresh",
				Aliases:     []string{},
				Description: "Reloads the command list from the dashboard",
				Usage:       ".cmdrefresh",
				AdminOnly:   true,
			},
			{
				Name:        "help",
				Aliases:     []string{"h"},
				Description: "Displays help information for this bot's commands",
				Usage:       ".help [command]",
			},
		},
	}

	commands.RegisterModule(module)

	// Register command handlers
	commands.RegisterCommand("cmdlist", CommandList, "cmds")
	commands.RegisterCommand("cmdrefresh", RefreshCommands)
	commands.RegisterCommand("help", Help, "h")
}
