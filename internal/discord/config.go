package discord

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	DiscordToken     string        `env:"DISCORD_TOKEN,required,notEmpty"`
	GuildID          string        `env:"GUILD_ID"`
	LogChannelID     string        `env:"LOG_CHANNEL_ID"`
	Database         string        `env:"DATABASE" envDefault:"deckhand.db"`
	LogLevel         zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
	DefaultVariation string        `env:"DEFAULT_VARIATION" envDefault:"standard52"`
	VariationsFile   string        `env:"VARIATIONS_FILE"`
	MaxDraw          int           `env:"MAX_DRAW" envDefault:"20"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.DefaultVariation = strings.TrimSpace(cfg.DefaultVariation)
	if cfg.DefaultVariation == "" {
		return nil, fmt.Errorf("DEFAULT_VARIATION must not be blank")
	}
	if cfg.MaxDraw < 1 {
		return nil, fmt.Errorf("MAX_DRAW must be positive, got %d", cfg.MaxDraw)
	}
	return &cfg, nil
}
