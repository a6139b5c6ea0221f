package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"deckhand/internal/cards"
	"deckhand/internal/variations"
)

// Variations resolves deck variations for /deck and /variation. It is
// injected at startup.
var Variations *Catalog

var VariationCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "variation",
		Description: "Manage deck variations",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "list",
				Description: "List available variations",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "import",
				Description: "Add or replace custom variations from YAML",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "yaml",
						Description: "A document with a top-level variations list",
						Required:    true,
					},
				},
			},
			{
				Name:        "export",
				Description: "Show a variation as YAML",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Variation name",
						Required:    true,
					},
				},
			},
			{
				Name:        "remove",
				Description: "Delete a custom variation",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Variation name",
						Required:    true,
					},
				},
			},
		},
	},
}

func HandleVariationCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if len(data.Options) == 0 {
		return
	}
	if Variations == nil {
		respondError(s, i, "Variations are not available.")
		return
	}

	msg, err := runVariationCommand(Variations, interactionUser(i), data.Options[0])
	if err != nil {
		respondError(s, i, variationErrorMessage(err))
		return
	}
	respondSuccess(s, i, msg)
}

func runVariationCommand(catalog *Catalog, user User, sub *discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "list":
		vs, err := catalog.List()
		if err != nil {
			return "", err
		}
		var b strings.Builder
		b.WriteString("📋 **Variations**:\n")
		for _, v := range vs {
			kind := cards.KindCustom.String()
			if _, builtin := cards.Preset(v.Name()); builtin {
				kind = "built-in"
			}
			fmt.Fprintf(&b, "- `%s` (%s, %d cards, %s priority)\n", v.Name(), kind, v.Size(), strings.ToLower(v.Priority().String()))
		}
		return b.String(), nil
	case "import":
		vs, err := variations.ParseString(opts["yaml"].StringValue())
		if err != nil {
			return "", err
		}
		if len(vs) == 0 {
			return "", errors.New("the document defines no variations")
		}
		if err := catalog.SaveAll(vs, user.ID); err != nil {
			return "", err
		}
		names := make([]string, len(vs))
		for i, v := range vs {
			names[i] = "`" + v.Name() + "`"
		}
		return fmt.Sprintf("✅ Saved %s.", strings.Join(names, ", ")), nil
	case "export":
		v, err := catalog.Lookup(opts["name"].StringValue())
		if err != nil {
			return "", err
		}
		out, err := variations.Marshal(v)
		if err != nil {
			return "", err
		}
		return "```yaml\n" + truncate(string(out), 1900) + "```", nil
	case "remove":
		name := strings.TrimSpace(opts["name"].StringValue())
		if err := catalog.Remove(name); err != nil {
			return "", err
		}
		return fmt.Sprintf("🗑️ Removed `%s`.", name), nil
	default:
		return "", fmt.Errorf("unknown subcommand %q", sub.Name)
	}
}

func variationErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnknownVariation), errors.Is(err, ErrBuiltinVariation):
		return err.Error()
	case errors.Is(err, cards.ErrInvalidVariation),
		errors.Is(err, variations.ErrDuplicateName),
		errors.Is(err, variations.ErrMissingName):
		return "Invalid variation: " + err.Error()
	default:
		return err.Error()
	}
}
