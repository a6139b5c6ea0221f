package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type Bot struct {
	Session *discordgo.Session
	Config  *Config
	logger  *zap.Logger
}

func New(cfg *Config, logger *zap.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session: session,
		Config:  cfg,
		logger:  logger,
	}, nil
}

func (b *Bot) Start() error {
	// Slash commands only need guild events.
	b.Session.Identify.Intents = discordgo.IntentsGuilds

	err := b.Session.Open()
	if err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	b.logger.Info("bot is now running")
	return nil
}

func (b *Bot) Stop() error {
	return b.Session.Close()
}
