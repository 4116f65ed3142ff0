// Package menu turns the dashboard's command tree into paginated text and
// remembers which page each conversation is looking at.
package menu

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"HelpMenu/dashboard"
)

// MaxFieldLength is the longest a normalized text field may be, in characters.
const MaxFieldLength = 120

const (
	ellipsis      = "…"
	unknownPlugin = "unknown"
)

// Item is one listed command. Items are identified by (PluginName, Command).
type Item struct {
	PluginName  string
	Command     string
	Description string
	Aliases     []string
}

type itemKey struct {
	plugin  string
	command string
}

// Extract flattens the command tree, keeps enabled public commands, dedupes
// them by plugin and command, and returns them sorted.
func Extract(nodes []dashboard.CommandNode) []Item {
	seen := make(map[itemKey]bool)
	var items []Item
	collect(nodes, seen, &items)
	SortItems(items)
	return items
}

// collect walks nodes depth-first, pre-order.
func collect(nodes []dashboard.CommandNode, seen map[itemKey]bool, items *[]Item) {
	for _, node := range nodes {
		if node.IsCommand() && node.IsPublic() {
			if item, ok := itemFromNode(node); ok {
				key := itemKey{item.PluginName, item.Command}
				if !seen[key] {
					seen[key] = true
					*items = append(*items, item)
				}
			}
		}
		if len(node.SubCommands) > 0 {
			collect(node.SubCommands, seen, items)
		}
	}
}

func itemFromNode(node dashboard.CommandNode) (Item, bool) {
	command := Normalize(firstNonEmpty(node.EffectiveCommand, node.OriginalCommand, node.HandlerName))
	if command == "" {
		return Item{}, false
	}

	plugin := Normalize(firstNonEmpty(node.PluginDisplayName, node.Plugin))
	if plugin == "" {
		plugin = unknownPlugin
	}

	var aliases []string
	for _, alias := range node.Aliases {
		if alias = Normalize(alias); alias != "" {
			aliases = append(aliases, alias)
		}
	}

	return Item{
		PluginName:  plugin,
		Command:     command,
		Description: Normalize(node.Description),
		Aliases:     aliases,
	}, true
}

// Normalize collapses whitespace runs to single spaces and truncates the
// result to MaxFieldLength characters, marking the cut with an ellipsis.
func Normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= MaxFieldLength {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:MaxFieldLength-1]), " ") + ellipsis
}

// SortItems orders items by plugin then command, ignoring case. Items that
// compare equal keep their relative order.
func SortItems(items []Item) {
	fold := cases.Fold()
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := fold.String(items[i].PluginName), fold.String(items[j].PluginName)
		if pi != pj {
			return pi < pj
		}
		return fold.String(items[i].Command) < fold.String(items[j].Command)
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
