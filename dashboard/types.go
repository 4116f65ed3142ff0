package dashboard

// Command node types reported by the dashboard.
const (
	TypeCommand    = "command"
	TypeSubCommand = "sub_command"
	TypeGroup      = "group"
)

// PermissionEveryone is the open permission tier; anything else is restricted.
const PermissionEveryone = "everyone"

// CommandNode is one entry of the nested command tree returned by /api/commands.
type CommandNode struct {
	Type              string        `json:"type"`
	Enabled           bool          `json:"enabled"`
	Permission        string        `json:"permission"`
	Plugin            string        `json:"plugin"`
	PluginDisplayName string        `json:"plugin_display_name"`
	EffectiveCommand  string        `json:"effective_command"`
	OriginalCommand   string        `json:"original_command"`
	HandlerName       string        `json:"handler_name"`
	Description       string        `json:"description"`
	Aliases           []string      `json:"aliases"`
	SubCommands       []CommandNode `json:"sub_commands"`
}

// IsCommand reports whether the node is an invocable command or sub-command.
func (n CommandNode) IsCommand() bool {
	return n.Type == TypeCommand || n.Type == TypeSubCommand
}

// IsPublic reports whether the node is enabled and open to everyone.
func (n CommandNode) IsPublic() bool {
	return n.Enabled && n.Permission == PermissionEveryone
}
