package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

var PermissionCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "perm",
		Description: "Manage bot permissions",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "add",
				Description: "Add a permission to a user",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options:     permUserNodeOptions("The user to grant permission to"),
			},
			{
				Name:        "remove",
				Description: "Remove a permission from a user",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options:     permUserNodeOptions("The user to revoke permission from"),
			},
			{
				Name:        "list",
				Description: "List permissions for a user",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "The user to list permissions for",
						Required:    true,
					},
				},
			},
		},
	},
}

func permUserNodeOptions(userDescription string) []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: userDescription,
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "node",
			Description: "Permission node or category (e.g. deck.play, deck)",
			Required:    true,
		},
	}
}

func HandlePermissionCommand(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if len(data.Options) == 0 {
		return
	}
	if DB == nil {
		respondError(s, i, "Database not initialized.")
		return
	}

	subcmd := data.Options[0]
	opts := optionMap(subcmd.Options)
	user := opts["user"].UserValue(s)

	switch subcmd.Name {
	case "add", "remove":
		msg, err := changePermissions(subcmd.Name == "add", user, opts["node"].StringValue())
		if err != nil {
			respondError(s, i, err.Error())
			return
		}
		respondSuccess(s, i, msg)
	case "list":
		nodes, err := DB.ListPermissions(user.ID)
		if err != nil {
			respondError(s, i, fmt.Sprintf("Failed to list permissions: %v", err))
			return
		}
		if len(nodes) == 0 {
			respondSuccess(s, i, fmt.Sprintf("**%s** has no explicit permissions.", user.Username))
			return
		}
		var b strings.Builder
		fmt.Fprintf(&b, "📋 **Permissions for %s**:\n", user.Username)
		for _, n := range nodes {
			fmt.Fprintf(&b, "- `%s`\n", n)
		}
		respondSuccess(s, i, b.String())
	}
}

func changePermissions(grant bool, user *discordgo.User, input string) (string, error) {
	nodes := resolveNodes(input)
	if len(nodes) == 0 {
		return "", fmt.Errorf("invalid permission node or category: `%s`", input)
	}

	apply, verb := DB.RemovePermission, "Revoked"
	if grant {
		apply, verb = DB.AddPermission, "Granted"
	}

	count := 0
	for _, node := range nodes {
		if err := apply(user.ID, node); err != nil {
			Logger.Error("permission change failed",
				zap.Bool("grant", grant),
				zap.String("node", node),
				zap.String("user_id", user.ID),
				zap.Error(err),
			)
			continue
		}
		count++
	}
	if count == 0 {
		return "", errors.New("failed to change any permissions")
	}

	if count == 1 && len(nodes) == 1 {
		return fmt.Sprintf("✅ %s `%s` for **%s**.", verb, nodes[0], user.Username), nil
	}
	return fmt.Sprintf("✅ %s **%d** permission(s) for **%s**.", verb, count, user.Username), nil
}

func resolveNodes(input string) []string {
	if IsValidPermissionNode(input) {
		return []string{input}
	}
	return GetPermissionsByCategory(input)
}
