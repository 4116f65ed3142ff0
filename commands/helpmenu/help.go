package helpmenu

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"HelpMenu/bot"
	"HelpMenu/commands"
)

func Help(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	embed, ok := helpEmbed(args)
	if !ok {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Command `%s` not found.", strings.ToLower(args[1])))
		return
	}

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		log.Error().Err(err).Str("channel", m.ChannelID).Msg("error sending help")
	}
}

// helpEmbed builds the help for one command (args[1]) or, without an
// argument, the overview of all commands.
func helpEmbed(args []string) (*discordgo.MessageEmbed, bool) {
	if len(args) > 1 {
		commandInfo, exists := commands.GetCommandInfo(args[1])
		if !exists {
			return nil, false
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Help: %s", commandInfo.Name),
			Description: commandInfo.Description,
			Color:       0x00ff00,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  "Usage",
					Value: fmt.Sprintf("`%s`", commandInfo.Usage),
				},
			},
		}

		if len(commandInfo.Aliases) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Aliases",
				Value: strings.Join(commandInfo.Aliases, ", "),
			})
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Category",
			Value: commandInfo.Category,
		})
		if module := commands.GetModuleByCommand(commandInfo.Name); module != nil {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Module",
				Value: module.Name,
			})
		}
		if commandInfo.AdminOnly {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Permission",
				Value: "Administrators only",
			})
		}

		return embed, true
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Help",
		Description: "For more information on a specific command, type `.help <command>`.",
		Color:       0x00ff00,
	}
	for _, cmd := range commands.GetAllCommands() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("`%s`", cmd.Usage),
			Value: cmd.Description,
		})
	}
	return embed, true
}
