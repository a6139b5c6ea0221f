package commands

import (
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"deckhand/internal/database"
)

// CommandPermissionMap maps command names to their required permission node.
var CommandPermissionMap = map[string]string{
	// Decks
	"deck":      "deck.play",
	"variation": "deck.variations",

	// Permissions
	"perm": "admin.perm",
}

// DB instance for permission checks
var DB *database.DB
var OwnerID string

// Logger is replaced at startup.
var Logger = zap.NewNop()

func AllCommands() []*discordgo.ApplicationCommand {
	all := make([]*discordgo.ApplicationCommand, 0, len(DeckCommands)+len(VariationCommands)+len(PermissionCommands))
	all = append(all, DeckCommands...)
	all = append(all, VariationCommands...)
	all = append(all, PermissionCommands...)
	return all
}

// RegisterCommands registers all slash commands with Discord.
func RegisterCommands(s *discordgo.Session, guildID string) {
	Logger.Info("registering commands", zap.String("guild_id", guildID))
	for _, cmd := range AllCommands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			Logger.Error("cannot create command", zap.String("command", cmd.Name), zap.Error(err))
		}
	}
	Logger.Info("commands registered")
}

// HandleInteraction is the central dispatcher for all slash commands.
func HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	user := interactionUser(i)

	// Permission Check
	if !hasPermission(user.ID, data.Name) {
		Logger.Info("command denied",
			zap.String("user", user.Username),
			zap.String("user_id", user.ID),
			zap.String("command", data.Name),
		)
		respondError(s, i, "🚫 You do not have permission to use this command.")
		return
	}

	Logger.Info("command exec",
		zap.String("user", user.Username),
		zap.String("user_id", user.ID),
		zap.String("guild_id", i.GuildID),
		zap.String("command", data.Name),
	)

	switch data.Name {
	case "deck":
		HandleDeckCommand(s, i, data)
	case "variation":
		HandleVariationCommand(s, i, data)
	case "perm":
		HandlePermissionCommand(s, i, data)
	}
}

func hasPermission(userID string, commandName string) bool {
	if userID != "" && userID == OwnerID {
		return true
	}

	// Every command needs an explicit node; unmapped commands are denied.
	node, exists := CommandPermissionMap[commandName]
	if !exists {
		return false
	}

	if DB == nil {
		return false // Fail safe
	}

	has, err := DB.HasPermission(userID, node)
	if err != nil {
		Logger.Error("permission check failed", zap.String("user_id", userID), zap.String("node", node), zap.Error(err))
		return false
	}

	return has
}

// IsValidPermissionNode checks if a permission node exists in the map.
func IsValidPermissionNode(node string) bool {
	for _, n := range CommandPermissionMap {
		if n == node {
			return true
		}
	}
	return false
}

// GetPermissionsByCategory returns all permission nodes under a category,
// e.g. "deck" -> "deck.play", "deck.variations".
func GetPermissionsByCategory(category string) []string {
	var nodes []string
	prefix := category + "."
	for _, node := range CommandPermissionMap {
		if strings.HasPrefix(node, prefix) && !slices.Contains(nodes, node) {
			nodes = append(nodes, node)
		}
	}
	slices.Sort(nodes)
	return nodes
}

func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) {
	if !strings.HasPrefix(msg, "🚫") {
		msg = "❌ " + msg
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		Logger.Warn("respond failed", zap.Error(err))
	}
}

func respondSuccess(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
		},
	})
	if err != nil {
		Logger.Warn("respond failed", zap.Error(err))
	}
}
