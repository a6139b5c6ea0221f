package events

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"deckhand/internal/commands"
)

// ChannelSender is the part of *discordgo.Session the logger needs.
type ChannelSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Logger records deck events to the process log and, when a channel is
// configured, to a Discord log channel.
type Logger struct {
	Session      ChannelSender
	LogChannelID string
	logger       *zap.Logger
}

func NewLogger(s ChannelSender, channelID string, logger *zap.Logger) *Logger {
	return &Logger{
		Session:      s,
		LogChannelID: channelID,
		logger:       logger,
	}
}

var actionColors = map[string]int{
	"open":    0x00ff00, // Green
	"close":   0xff0000, // Red
	"draw":    0x3498db,
	"shuffle": 0xf1c40f,
	"reset":   0x9b59b6,
}

// DeckEvent implements commands.Auditor.
func (l *Logger) DeckEvent(ev commands.Event) {
	l.logger.Info("deck event",
		zap.String("table_id", ev.TableID),
		zap.String("user", ev.Username),
		zap.String("user_id", ev.UserID),
		zap.String("action", ev.Action),
		zap.String("detail", ev.Detail),
		zap.Int("remaining", ev.Remaining),
	)

	if l.Session == nil || l.LogChannelID == "" {
		return
	}
	if _, err := l.Session.ChannelMessageSendEmbed(l.LogChannelID, embedFor(ev)); err != nil {
		l.logger.Warn("cannot send log embed", zap.String("channel_id", l.LogChannelID), zap.Error(err))
	}
}

func embedFor(ev commands.Event) *discordgo.MessageEmbed {
	desc := fmt.Sprintf("**%s** %s.", ev.Username, pastTense(ev.Action))
	if ev.Detail != "" {
		desc += "\n" + ev.Detail
	}
	return &discordgo.MessageEmbed{
		Title:       "Deck " + ev.Action,
		Description: desc,
		Color:       actionColors[ev.Action],
		Timestamp:   ev.At.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Cards left", Value: fmt.Sprint(ev.Remaining), Inline: true},
			{Name: "Table", Value: ev.TableID, Inline: true},
		},
	}
}

func pastTense(action string) string {
	switch action {
	case "open":
		return "opened a deck"
	case "close":
		return "closed their deck"
	case "draw":
		return "drew"
	case "shuffle":
		return "shuffled their deck"
	case "reset":
		return "reset their deck"
	default:
		return action
	}
}
