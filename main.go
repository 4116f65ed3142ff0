package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"HelpMenu/bot"
	"HelpMenu/commands"
	_ "HelpMenu/commands/helpmenu"
	"HelpMenu/config"
)

func handleMessage(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
			return
		}

		name, args, ok := commands.ParseInvocation(m.Content, bot.Prefix)
		if !ok {
			return
		}

		name, handler, exists := commands.Lookup(name)
		if !exists {
			return
		}

		if !b.Limiter.Allow(m.Author.ID, name) {
			retry := b.Limiter.GetRetryAfter(m.Author.ID, name)
			s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("You're doing that too often. Try again in %d seconds.", retry))
			return
		}

		log.Debug().Str("command", name).Str("user", m.Author.ID).Str("channel", m.ChannelID).Msg("dispatching command")
		handler(b, s, m, args)
	}
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		config.InitLogger(config.DefaultLogLevel)
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	config.InitLogger(cfg.LogLevel)

	if cfg.DiscordToken == "" {
		log.Fatal().Msg("DISCORD_TOKEN environment variable is required")
	}

	b, err := bot.NewBot(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	b.Client.AddHandler(handleMessage(b))

	if err := b.Client.Open(); err != nil {
		log.Fatal().Err(err).Msg("failed to open Discord session")
	}
	defer b.Client.Close()

	log.Info().Str("dashboard", cfg.DashboardBaseURL).Bool("debug", cfg.Debug).Msg("Bot is running. Press Ctrl+C to exit.")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")
}
