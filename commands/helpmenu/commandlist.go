package helpmenu

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"HelpMenu/bot"
	"HelpMenu/menu"
	"HelpMenu/utils"
)

// CommandList shows one page of the cached command list. The page is
// remembered per channel so "next" and "prev" continue from there.
func CommandList(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	reply := listReply(b.Menu, m.ChannelID, args)
	if err := utils.SendLong(s, m.ChannelID, reply); err != nil {
		log.Error().Err(err).Str("channel", m.ChannelID).Msg("error sending command list page")
	}
}

// RefreshCommands reloads the command list from the dashboard. Only guild
// administrators may run it.
func RefreshCommands(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if m.GuildID == "" {
		s.ChannelMessageSend(m.ChannelID, "This command can only be used in a server.")
		return
	}

	isAdmin, err := utils.CheckAdminPermission(s, m.GuildID, m.Author.ID)
	if err != nil {
		log.Error().Err(err).Str("guild", m.GuildID).Msg("error checking admin permission")
		s.ChannelMessageSend(m.ChannelID, "Could not verify your permissions.")
		return
	}
	if !isAdmin {
		s.ChannelMessageSend(m.ChannelID, "You need administrator permission to refresh the command list.")
		return
	}

	s.ChannelMessageSend(m.ChannelID, "Refreshing command list...")
	res := b.Menu.Refresh(context.Background())
	s.ChannelMessageSend(m.ChannelID, refreshReply(res))
}

func listReply(svc *menu.Service, sessionID string, args []string) string {
	arg := ""
	if len(args) > 1 {
		arg = args[1]
	}
	return svc.Page(sessionID, arg)
}

func refreshReply(res menu.RefreshResult) string {
	if !res.OK {
		return fmt.Sprintf("Failed to refresh the command list: %s", res.Message)
	}
	return fmt.Sprintf("Command list refreshed: %d commands on %d pages.", res.Items, res.Pages)
}
