package commands

import (
	"path/filepath"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"deckhand/internal/database"
)

func testUser(id, name string) *discordgo.User {
	return &discordgo.User{ID: id, Username: name}
}

func TestPermissionNodes(t *testing.T) {
	assert.True(t, IsValidPermissionNode("deck.play"))
	assert.False(t, IsValidPermissionNode("deck"))
	assert.False(t, IsValidPermissionNode("music.play"))

	assert.Equal(t, []string{"deck.play", "deck.variations"}, GetPermissionsByCategory("deck"))
	assert.Empty(t, GetPermissionsByCategory("music"))

	assert.Equal(t, []string{"admin.perm"}, resolveNodes("admin"))
	assert.Equal(t, []string{"deck.play"}, resolveNodes("deck.play"))
}

func TestAllCommandsHavePermissionNodes(t *testing.T) {
	for _, cmd := range AllCommands() {
		_, ok := CommandPermissionMap[cmd.Name]
		assert.True(t, ok, "command %s has no permission node", cmd.Name)
	}
}

func TestHasPermission(t *testing.T) {
	db, err := database.New(filepath.Join(t.TempDir(), "perm.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	oldDB, oldOwner := DB, OwnerID
	DB, OwnerID = db, "owner"
	t.Cleanup(func() { DB, OwnerID = oldDB, oldOwner })

	assert.True(t, hasPermission("owner", "perm"))
	assert.False(t, hasPermission("u1", "deck"))

	require.NoError(t, db.AddPermission("u1", "deck.play"))
	assert.True(t, hasPermission("u1", "deck"))
	assert.False(t, hasPermission("u1", "variation"))
	assert.False(t, hasPermission("u1", "unmapped"))

	msg, err := changePermissions(true, testUser("u2", "bob"), "deck")
	require.NoError(t, err)
	assert.Equal(t, "✅ Granted **2** permission(s) for **bob**.", msg)
	assert.True(t, hasPermission("u2", "variation"))

	msg, err = changePermissions(false, testUser("u2", "bob"), "deck.variations")
	require.NoError(t, err)
	assert.Equal(t, "✅ Revoked `deck.variations` for **bob**.", msg)
	assert.False(t, hasPermission("u2", "variation"))

	_, err = changePermissions(true, testUser("u2", "bob"), "music")
	assert.Error(t, err)
}

func TestHasPermission_NoDatabase(t *testing.T) {
	oldDB, oldOwner := DB, OwnerID
	DB, OwnerID = nil, ""
	t.Cleanup(func() { DB, OwnerID = oldDB, oldOwner })

	assert.False(t, hasPermission("", "deck"))
	assert.False(t, hasPermission("u1", "deck"))
}
