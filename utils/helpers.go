package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// MaxMessageLength is Discord's limit for a single message's content.
const MaxMessageLength = 2000

// SplitMessage breaks text into chunks of at most limit characters, cutting
// on line boundaries where possible. Lines longer than limit are hard-split.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 {
		limit = MaxMessageLength
	}
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		for len(runes) > limit {
			flush()
			chunks = append(chunks, string(runes[:limit]))
			runes = runes[limit:]
		}

		lineLen := len(runes)
		sep := 0
		if currentLen > 0 {
			sep = 1
		}
		if currentLen+sep+lineLen > limit {
			flush()
			sep = 0
		}
		if sep == 1 {
			current.WriteByte('\n')
		}
		current.WriteString(string(runes))
		currentLen += sep + lineLen
	}
	flush()

	return chunks
}

// SendLong sends text to a channel, split into as many messages as needed.
func SendLong(s *discordgo.Session, channelID, text string) error {
	for _, chunk := range SplitMessage(text, MaxMessageLength) {
		if _, err := s.ChannelMessageSend(channelID, chunk); err != nil {
			return fmt.Errorf("error sending message: %v", err)
		}
	}
	return nil
}

// CheckPermission checks if a user has a specific permission in a guild
func CheckPermission(s *discordgo.Session, guildID, userID string, permission int64) (bool, error) {
	// Fetch guild member details
	member, err := s.GuildMember(guildID, userID)
	if err != nil {
		return false, fmt.Errorf("error fetching member: %v", err)
	}

	// Fetch guild roles
	guild, err := s.Guild(guildID)
	if err != nil {
		return false, fmt.Errorf("error fetching guild: %v", err)
	}

	if guild.OwnerID == userID {
		return true, nil
	}

	return MemberHasPermission(member, guild.Roles, permission), nil
}

// MemberHasPermission reports whether any of the member's roles grants
// permission. Administrator implies every permission.
func MemberHasPermission(member *discordgo.Member, roles []*discordgo.Role, permission int64) bool {
	for _, roleID := range member.Roles {
		for _, role := range roles {
			if role.ID != roleID {
				continue
			}
			if role.Permissions&permission != 0 || role.Permissions&discordgo.PermissionAdministrator != 0 {
				return true
			}
		}
	}
	return false
}

// CheckAdminPermission checks if a user has administrator permissions in a guild
func CheckAdminPermission(s *discordgo.Session, guildID, userID string) (bool, error) {
	return CheckPermission(s, guildID, userID, discordgo.PermissionAdministrator)
}
