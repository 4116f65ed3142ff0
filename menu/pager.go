package menu

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

const (
	// PageSize is the number of commands rendered per page.
	PageSize = 12

	TimeLayout = "2006-01-02 15:04:05"
)

// Labels holds the host-specific strings that appear in rendered pages.
type Labels struct {
	ListCommand    string // e.g. ".cmdlist"
	RefreshCommand string // e.g. ".cmdrefresh"
	CommandPrefix  string // prefix shown before each listed command
}

// DefaultLabels matches the Discord host's command names.
var DefaultLabels = Labels{
	ListCommand:    ".cmdlist",
	RefreshCommand: ".cmdrefresh",
	CommandPrefix:  "/",
}

// BuildPages splits sorted items into pages of PageSize and renders each one.
// It always returns at least one page.
func BuildPages(items []Item, updated time.Time, labels Labels) []string {
	if len(items) == 0 {
		return []string{placeholderPage(labels)}
	}

	total := (len(items) + PageSize - 1) / PageSize
	pages := make([]string, 0, total)
	for i := 0; i < total; i++ {
		start := i * PageSize
		end := min(start+PageSize, len(items))
		pages = append(pages, renderPage(items[start:end], i+1, total, len(items), updated, labels))
	}
	return pages
}

func placeholderPage(labels Labels) string {
	return fmt.Sprintf("Command list (page 1/1)\nNo commands loaded yet. Run %s to fetch the command list.", labels.RefreshCommand)
}

// FormatUpdated renders the refresh time shown in page headers.
func FormatUpdated(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format(TimeLayout)
}

type pluginGroup struct {
	name  string
	items []Item
}

// groupByPlugin groups items by plugin, keeping item order inside a group and
// ordering the groups by plugin name ignoring case.
func groupByPlugin(items []Item) []pluginGroup {
	index := make(map[string]int)
	var groups []pluginGroup
	for _, item := range items {
		i, ok := index[item.PluginName]
		if !ok {
			i = len(groups)
			index[item.PluginName] = i
			groups = append(groups, pluginGroup{name: item.PluginName})
		}
		groups[i].items = append(groups[i].items, item)
	}

	fold := cases.Fold()
	sort.SliceStable(groups, func(i, j int) bool {
		return fold.String(groups[i].name) < fold.String(groups[j].name)
	})
	return groups
}

func renderPage(items []Item, page, totalPages, totalItems int, updated time.Time, labels Labels) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Command list (page %d/%d)\n", page, totalPages)
	fmt.Fprintf(&sb, "%d commands · updated %s\n", totalItems, FormatUpdated(updated))
	fmt.Fprintf(&sb, "Use %s <page|next|prev> to navigate.\n", labels.ListCommand)

	for _, group := range groupByPlugin(items) {
		fmt.Fprintf(&sb, "\n[%s]\n", group.name)
		for _, item := range group.items {
			sb.WriteString("• ")
			sb.WriteString(labels.CommandPrefix)
			sb.WriteString(item.Command)
			if item.Description != "" {
				sb.WriteString(" - ")
				sb.WriteString(item.Description)
			}
			sb.WriteString("\n")
			if len(item.Aliases) > 0 {
				fmt.Fprintf(&sb, "    aliases: %s\n", strings.Join(item.Aliases, ", "))
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
