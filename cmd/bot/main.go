package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"deckhand/internal/cards"
	"deckhand/internal/commands"
	"deckhand/internal/database"
	"deckhand/internal/discord"
	"deckhand/internal/events"
	"deckhand/internal/variations"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load Configuration
	cfg, err := discord.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	// 2. Initialize Bot
	bot, err := discord.New(cfg, logger)
	if err != nil {
		return err
	}

	// 3. Initialize Database
	db, err := database.New(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	// 4. Variations: presets, the optional file, then the database
	var loaded []*cards.Variation
	if cfg.VariationsFile != "" {
		loaded, err = variations.LoadFile(cfg.VariationsFile)
		if err != nil {
			return err
		}
		logger.Info("variations loaded", zap.String("file", cfg.VariationsFile), zap.Int("count", len(loaded)))
	}
	catalog := commands.NewCatalog(db, loaded)
	if _, err := catalog.Lookup(cfg.DefaultVariation); err != nil {
		return fmt.Errorf("DEFAULT_VARIATION: %w", err)
	}

	audit := events.NewLogger(bot.Session, cfg.LogChannelID, logger.Named("events"))

	// Inject dependencies into commands package
	commands.DB = db
	commands.Logger = logger.Named("commands")
	commands.Variations = catalog
	commands.DefaultVariation = cfg.DefaultVariation
	commands.Decks = commands.NewTables(catalog, cfg.MaxDraw, audit, commands.Logger)

	app, err := bot.Session.Application("@me")
	if err != nil {
		logger.Warn("could not fetch application info", zap.Error(err))
	} else if app.Owner != nil {
		commands.OwnerID = app.Owner.ID
		logger.Info("bot owner set", zap.String("owner_id", commands.OwnerID))
	} else if app.Team != nil {
		logger.Warn("bot is owned by a team, grant permissions with /perm from a team owner account")
	}

	// 5. Register Event Handlers
	bot.Session.AddHandler(commands.HandleInteraction)
	bot.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Info("logged in", zap.String("user", s.State.User.Username))
	})

	// 6. Start Bot
	if err := bot.Start(); err != nil {
		return err
	}
	defer bot.Stop()

	// 7. Register Commands
	commands.RegisterCommands(bot.Session, cfg.GuildID)

	// 8. Wait for Shutdown Signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	logger.Info("bot is running, press Ctrl+C to exit")
	<-stop

	logger.Info("shutting down", zap.Int("open_decks", commands.Decks.Len()))
	return nil
}
