package menu

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item{PluginName: "core", Command: fmt.Sprintf("cmd%02d", i)})
	}
	return items
}

var refreshedAt = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func TestBuildPagesEmptyYieldsPlaceholder(t *testing.T) {
	pages := BuildPages(nil, refreshedAt, DefaultLabels)
	require.Len(t, pages, 1)
	assert.Contains(t, pages[0], "page 1/1")
	assert.Contains(t, pages[0], ".cmdrefresh")
}

func TestBuildPagesCounts(t *testing.T) {
	tests := []struct {
		items int
		pages int
	}{
		{1, 1},
		{PageSize, 1},
		{PageSize + 1, 2},
		{PageSize * 3, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d items", tt.items), func(t *testing.T) {
			pages := BuildPages(makeItems(tt.items), refreshedAt, DefaultLabels)
			assert.Len(t, pages, tt.pages)
		})
	}
}

func TestBuildPagesContent(t *testing.T) {
	items := makeItems(13)
	pages := BuildPages(items, refreshedAt, DefaultLabels)
	require.Len(t, pages, 2)

	assert.True(t, strings.HasPrefix(pages[0], "Command list (page 1/2)\n13 commands · updated 2026-10-17 12:00:00\n"))
	assert.Contains(t, pages[0], "/cmd11")
	assert.NotContains(t, pages[0], "/cmd12")
	assert.Contains(t, pages[1], "Command list (page 2/2)")
	assert.Contains(t, pages[1], "• /cmd12")
	assert.Equal(t, 1, strings.Count(pages[1], "• "))
}

func TestRenderPageGroupsByPlugin(t *testing.T) {
	items := []Item{
		{PluginName: "weather", Command: "wx", Description: "current weather", Aliases: []string{"w", "天气"}},
		{PluginName: "Admin", Command: "status"},
		{PluginName: "weather", Command: "forecast"},
	}
	page := BuildPages(items, refreshedAt, DefaultLabels)[0]

	want := strings.Join([]string{
		"Command list (page 1/1)",
		"3 commands · updated 2026-10-17 12:00:00",
		"Use .cmdlist <page|next|prev> to navigate.",
		"",
		"[Admin]",
		"• /status",
		"",
		"[weather]",
		"• /wx - current weather",
		"    aliases: w, 天气",
		"• /forecast",
	}, "\n")
	assert.Equal(t, want, page)
}

func TestBuildPagesCustomLabels(t *testing.T) {
	labels := Labels{ListCommand: "helpmenu-cli pages", RefreshCommand: "helpmenu-cli refresh", CommandPrefix: ""}

	assert.Contains(t, BuildPages(nil, time.Time{}, labels)[0], "helpmenu-cli refresh")

	page := BuildPages(makeItems(1), time.Time{}, labels)[0]
	assert.Contains(t, page, "updated never")
	assert.Contains(t, page, "• cmd00")
}
