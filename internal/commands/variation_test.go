package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckhand/internal/cards"
	"deckhand/internal/variations"
)

const coinsYAML = `variations:
  - name: coins
    values:
      - {name: HEADS, token: h}
      - {name: TAILS, token: t}
    ranks:
      - {name: COPPER, token: c}
      - {name: SILVER, token: s}
    value_hierarchy: {HEADS: 2, TAILS: 1}
    rank_hierarchy: {COPPER: 1, SILVER: 2}
    priority: RANK
`

func TestRunVariationCommand(t *testing.T) {
	store := newFakeStore()
	catalog := NewCatalog(store, nil)

	msg, err := runVariationCommand(catalog, alice, subcommand("import", stringOpt("yaml", coinsYAML)))
	require.NoError(t, err)
	assert.Equal(t, "✅ Saved `coins`.", msg)
	assert.Contains(t, store.defs, "coins")

	msg, err = runVariationCommand(catalog, alice, subcommand("list"))
	require.NoError(t, err)
	assert.Contains(t, msg, "- `standard52` (built-in, 52 cards, neutral priority)\n")
	assert.Contains(t, msg, "- `coins` (custom, 4 cards, rank priority)\n")

	msg, err = runVariationCommand(catalog, alice, subcommand("export", stringOpt("name", "coins")))
	require.NoError(t, err)
	require.Contains(t, msg, "```yaml\n")

	body := msg[len("```yaml\n") : len(msg)-len("```")]
	vs, err := variations.ParseString(body)
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, cards.PriorityRank, vs[0].Priority())

	msg, err = runVariationCommand(catalog, alice, subcommand("remove", stringOpt("name", " coins ")))
	require.NoError(t, err)
	assert.Equal(t, "🗑️ Removed `coins`.", msg)

	_, err = runVariationCommand(catalog, alice, subcommand("export", stringOpt("name", "coins")))
	assert.ErrorIs(t, err, ErrUnknownVariation)
}

func TestRunVariationCommand_Rejects(t *testing.T) {
	catalog := NewCatalog(newFakeStore(), nil)

	tests := []struct {
		name string
		sub  string
		arg  string
		msg  string
	}{
		{"empty document", "import", "", "defines no variations"},
		{"bad yaml", "import", "variations: [", "decode variations"},
		{"missing hierarchy token", "import", "variations:\n  - name: x\n    values: [{name: A, token: a}]\n    ranks: [{name: B, token: b}]\n    value_hierarchy: {Z: 1}\n", "Invalid variation"},
		{"overwrite preset", "import", "variations:\n  - name: tarot\n    values: [{name: A, token: a}]\n    ranks: [{name: B, token: b}]\n", "built-in"},
		{"remove preset", "remove", "standard52", "built-in"},
		{"remove unknown", "remove", "nope", "unknown variation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt := "yaml"
			if tt.sub == "remove" {
				opt = "name"
			}
			_, err := runVariationCommand(catalog, alice, subcommand(tt.sub, stringOpt(opt, tt.arg)))
			require.Error(t, err)
			assert.Contains(t, variationErrorMessage(err), tt.msg)
		})
	}
}

func TestRunVariationCommand_ImportIsAllOrNothing(t *testing.T) {
	store := newFakeStore()
	catalog := NewCatalog(store, nil)

	doc := coinsYAML + `  - name: standard52
    values: [{name: A, token: a}]
    ranks: [{name: B, token: b}]
`
	_, err := runVariationCommand(catalog, alice, subcommand("import", stringOpt("yaml", doc)))
	require.ErrorIs(t, err, ErrBuiltinVariation)
	assert.Empty(t, store.defs)

	msg, err := runVariationCommand(catalog, alice, subcommand("list"))
	require.NoError(t, err)
	assert.NotContains(t, msg, "coins")
}

func TestRunVariationCommand_ImportPaddedName(t *testing.T) {
	store := newFakeStore()
	catalog := NewCatalog(store, nil)

	doc := "variations:\n  - name: \" padded \"\n    values: [{name: A, token: a}]\n    ranks: [{name: B, token: b}]\n"
	_, err := runVariationCommand(catalog, alice, subcommand("import", stringOpt("yaml", doc)))
	require.ErrorIs(t, err, cards.ErrInvalidVariation)
	assert.Contains(t, variationErrorMessage(err), "Invalid variation")
	assert.Empty(t, store.defs)
}
