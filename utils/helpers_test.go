package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessageShort(t *testing.T) {
	assert.Equal(t, []string{"hello"}, SplitMessage("hello", 10))
	assert.Equal(t, []string{""}, SplitMessage("", 10))
}

func TestSplitMessageOnLines(t *testing.T) {
	chunks := SplitMessage("aaaa\nbbbb\ncccc", 9)
	assert.Equal(t, []string{"aaaa\nbbbb", "cccc"}, chunks)
}

func TestSplitMessageHardSplitsLongLines(t *testing.T) {
	chunks := SplitMessage("ab\n"+strings.Repeat("字", 12)+"\ncd", 5)
	assert.Equal(t, []string{"ab", "字字字字字", "字字字字字", "字字\ncd"}, chunks)
}

func TestSplitMessageRespectsLimit(t *testing.T) {
	var lines []string
	for i := 0; i < 200; i++ {
		lines = append(lines, strings.Repeat("x", i%37))
	}
	text := strings.Join(lines, "\n")

	chunks := SplitMessage(text, 100)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 100)
	}
	assert.Equal(t, strings.ReplaceAll(text, "\n", ""), strings.ReplaceAll(strings.Join(chunks, ""), "\n", ""))
}

func TestMemberHasPermission(t *testing.T) {
	roles := []*discordgo.Role{
		{ID: "r-mod", Permissions: discordgo.PermissionManageMessages},
		{ID: "r-admin", Permissions: discordgo.PermissionAdministrator},
	}

	mod := &discordgo.Member{Roles: []string{"r-mod"}}
	admin := &discordgo.Member{Roles: []string{"r-admin"}}
	nobody := &discordgo.Member{Roles: []string{"r-missing"}}

	assert.True(t, MemberHasPermission(mod, roles, discordgo.PermissionManageMessages))
	assert.False(t, MemberHasPermission(mod, roles, discordgo.PermissionAdministrator))
	assert.True(t, MemberHasPermission(admin, roles, discordgo.PermissionManageMessages))
	assert.False(t, MemberHasPermission(nobody, roles, discordgo.PermissionManageMessages))
}
