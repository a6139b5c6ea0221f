package commands

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Decks holds every user's open deck. It is injected at startup.
var Decks *Tables

// DefaultVariation is used by /deck new when no variation is given.
var DefaultVariation = "standard52"

var DeckCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "deck",
		Description: "Work with your own deck of cards",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "new",
				Description: "Open a fresh deck",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "variation",
						Description: "Deck variation (see /variation list)",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "shuffled",
						Description: "Shuffle the new deck (default true)",
						Required:    false,
					},
				},
			},
			{
				Name:        "draw",
				Description: "Draw cards from the top",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "count",
						Description: "Number of cards (default 1)",
						Required:    false,
					},
				},
			},
			{
				Name:        "shuffle",
				Description: "Shuffle the remaining cards",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "search",
				Description: "Find a card in your deck",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "value",
						Description: "Value token, e.g. A or 10",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "rank",
						Description: "Rank token, e.g. ♤",
						Required:    true,
					},
				},
			},
			{
				Name:        "reset",
				Description: "Put every card back",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "autoshuffle",
				Description: "Choose whether resets shuffle",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "enabled",
						Description: "Shuffle on reset",
						Required:    true,
					},
				},
			},
			{
				Name:        "show",
				Description: "List the cards left, bottom to top",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "close",
				Description: "Put your deck away",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
		},
	},
}

func HandleDeckCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if len(data.Options) == 0 {
		return
	}
	if Decks == nil {
		respondError(s, i, "Decks are not available.")
		return
	}

	msg, err := runDeckCommand(Decks, interactionUser(i), data.Options[0])
	if err != nil {
		respondError(s, i, deckErrorMessage(err))
		return
	}
	respondSuccess(s, i, msg)
}

func runDeckCommand(tables *Tables, user User, sub *discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "new":
		variation := DefaultVariation
		if o, ok := opts["variation"]; ok {
			variation = o.StringValue()
		}
		shuffled := true
		if o, ok := opts["shuffled"]; ok {
			shuffled = o.BoolValue()
		}
		return tables.Open(user, variation, shuffled)
	case "draw":
		n := 1
		if o, ok := opts["count"]; ok {
			n = int(o.IntValue())
		}
		return tables.Draw(user, n)
	case "shuffle":
		return tables.Shuffle(user)
	case "search":
		return tables.Search(user, opts["value"].StringValue(), opts["rank"].StringValue())
	case "reset":
		return tables.Reset(user)
	case "autoshuffle":
		return tables.SetAutoShuffle(user, opts["enabled"].BoolValue())
	case "show":
		return tables.Show(user)
	case "close":
		return tables.Close(user)
	default:
		return "", fmt.Errorf("unknown subcommand %q", sub.Name)
	}
}

func deckErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoTable):
		return "You have no open deck. Use `/deck new` first."
	case errors.Is(err, ErrUnknownVariation):
		return err.Error() + ". Use `/variation list` to see what is available."
	case errors.Is(err, ErrDrawLimit), errors.Is(err, ErrEmptyToken):
		return err.Error()
	default:
		return "Something went wrong with your deck."
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, o := range options {
		m[o.Name] = o
	}
	return m
}

// interactionUser returns the invoking user for guild and DM interactions.
func interactionUser(i *discordgo.InteractionCreate) User {
	u := i.User
	if i.Member != nil && i.Member.User != nil {
		u = i.Member.User
	}
	if u == nil {
		return User{}
	}
	return User{ID: u.ID, Username: u.Username}
}
