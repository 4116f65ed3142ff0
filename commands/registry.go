package commands

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"HelpMenu/bot"
)

// CommandFunc defines the signature for command handlers
type CommandFunc func(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string)

var (
	CommandMap     = make(map[string]CommandFunc)
	CommandAliases = make(map[string]string) // alias -> command name
)

// RegisterCommand registers a handler under name and its aliases.
func RegisterCommand(name string, handler CommandFunc, aliases ...string) {
	CommandMap[name] = handler
	for _, alias := range aliases {
		CommandAliases[alias] = name
	}
}

// ResolveName maps an alias to its command name. Unknown names are returned as is.
func ResolveName(name string) string {
	name = strings.ToLower(name)
	if actual, isAlias := CommandAliases[name]; isAlias {
		return actual
	}
	return name
}

// Lookup finds the handler for a command name or alias.
func Lookup(name string) (string, CommandFunc, bool) {
	name = ResolveName(name)
	handler, ok := CommandMap[name]
	return name, handler, ok
}

// ParseInvocation splits a message into command name and arguments. args[0]
// is the command word as typed, without the prefix.
func ParseInvocation(content, prefix string) (string, []string, bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	args := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(args) == 0 {
		return "", nil, false
	}
	return strings.ToLower(args[0]), args, true
}
