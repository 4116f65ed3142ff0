package bot

import (
	"github.com/bwmarrin/discordgo"

	"HelpMenu/config"
	"HelpMenu/dashboard"
	"HelpMenu/menu"
	"HelpMenu/utils"
)

// Prefix starts every text command the bot answers to.
const Prefix = "."

type Bot struct {
	Client  *discordgo.Session
	Config  *config.Config
	Menu    *menu.Service
	Limiter *utils.RateLimiter
}

// NewService wires the dashboard client and config into a menu service.
// opts.Debug is combined with the configured debug flag.
func NewService(cfg *config.Config, opts menu.Options) *menu.Service {
	opts.Debug = opts.Debug || cfg.Debug
	return menu.NewService(dashboard.NewClient(cfg.DashboardBaseURL), cfg, opts)
}

func NewBot(cfg *config.Config) (*Bot, error) {
	client, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}
	client.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	return &Bot{
		Client:  client,
		Config:  cfg,
		Menu:    NewService(cfg, menu.Options{Labels: menu.DefaultLabels}),
		Limiter: utils.NewRateLimiter(),
	}, nil
}
