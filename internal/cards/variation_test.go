package cards_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckhand/internal/cards"
)

func colorsDefinition() cards.Definition {
	return cards.Definition{
		Name:           "colors",
		Values:         []cards.Token{{Name: "ONE", Display: "1"}, {Name: "TWO", Display: "2"}, {Name: "THREE", Display: "3"}},
		Ranks:          []cards.Token{{Name: "RED", Display: "r"}, {Name: "BLUE", Display: "b"}},
		ValueHierarchy: map[string]int{"ONE": 1, "TWO": 2, "THREE": 3},
		RankHierarchy:  map[string]int{"RED": 2, "BLUE": 1},
	}
}

func TestNewVariation_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*cards.Definition)
	}{
		{"value hierarchy key without value", func(d *cards.Definition) { d.ValueHierarchy["FOUR"] = 4 }},
		{"rank hierarchy key without rank", func(d *cards.Definition) { d.RankHierarchy["GREEN"] = 3 }},
		{"rank name used as value hierarchy key", func(d *cards.Definition) { d.ValueHierarchy["RED"] = 9 }},
		{"duplicate value name", func(d *cards.Definition) { d.Values = append(d.Values, cards.Token{Name: "ONE", Display: "x"}) }},
		{"duplicate rank token", func(d *cards.Definition) { d.Ranks = append(d.Ranks, cards.Token{Name: "GREEN", Display: "r"}) }},
		{"empty value name", func(d *cards.Definition) { d.Values = append(d.Values, cards.Token{Display: "4"}) }},
		{"padded name", func(d *cards.Definition) { d.Name = " colors " }},
		{"trailing newline in name", func(d *cards.Definition) { d.Name = "colors\n" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := colorsDefinition()
			tt.mutate(&def)

			v, err := cards.NewVariation(def)
			require.ErrorIs(t, err, cards.ErrInvalidVariation)
			assert.Nil(t, v)
		})
	}
}

func TestNewVariation_Defaults(t *testing.T) {
	v, err := cards.NewVariation(colorsDefinition())
	require.NoError(t, err)

	assert.Equal(t, cards.DefaultNameScheme, v.NameScheme())
	assert.Equal(t, cards.PriorityNeutral, v.Priority())
	assert.Equal(t, "colors", v.Name())
	assert.Equal(t, 6, v.Size())
}

func TestNewVariation_PartialHierarchyIsAllowed(t *testing.T) {
	def := colorsDefinition()
	delete(def.ValueHierarchy, "THREE")

	v, err := cards.NewVariation(def)
	require.NoError(t, err)

	_, ok := v.ValueWeight("3")
	assert.False(t, ok)
}

func TestVariation_Immutable(t *testing.T) {
	def := colorsDefinition()
	v, err := cards.NewVariation(def)
	require.NoError(t, err)

	// Mutating the input definition after construction.
	def.Values[0].Display = "uno"
	def.ValueHierarchy["ONE"] = 100

	// Mutating returned copies.
	values := v.Values()
	values[1].Display = "dos"
	v.RankHierarchy()["RED"] = 100
	v.Definition().Ranks[0].Display = "rojo"

	assert.Equal(t, "1", v.Values()[0].Display)
	assert.Equal(t, "2", v.Values()[1].Display)
	assert.Equal(t, "r", v.Ranks()[0].Display)
	assert.Equal(t, 1, v.ValueHierarchy()["ONE"])
	assert.Equal(t, 2, v.RankHierarchy()["RED"])
}

func TestVariation_Lookups(t *testing.T) {
	v := cards.Standard52

	name, ok := v.ValueName("Q")
	require.True(t, ok)
	assert.Equal(t, "QUEEN", name)

	name, ok = v.RankName("♦")
	require.True(t, ok)
	assert.Equal(t, "DIAMONDS", name)

	_, ok = v.ValueName("QUEEN")
	assert.False(t, ok, "lookups are by display token")

	w, ok := v.RankWeight("♤")
	require.True(t, ok)
	assert.Equal(t, 4, w)
}

func TestVariation_FormatName(t *testing.T) {
	v, err := cards.NewVariation(colorsDefinition())
	require.NoError(t, err)
	assert.Equal(t, "1 OF r", v.FormatName("1", "r"))

	def := colorsDefinition()
	def.NameScheme = "[{RANK}:{VALUE}] {VALUE}"
	v, err = cards.NewVariation(def)
	require.NoError(t, err)
	assert.Equal(t, "[b:2] 2", v.FormatName("2", "b"))

	// A token holding a placeholder is inserted literally.
	assert.Equal(t, "[{VALUE}:x] x", v.FormatName("x", "{VALUE}"))
}

func TestPriority_Text(t *testing.T) {
	var p cards.Priority
	require.NoError(t, p.UnmarshalText([]byte("rank")))
	assert.Equal(t, cards.PriorityRank, p)

	require.NoError(t, p.UnmarshalText(nil))
	assert.Equal(t, cards.PriorityNeutral, p)

	assert.Error(t, p.UnmarshalText([]byte("suit")))

	b, err := cards.PriorityValue.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "VALUE", string(b))
}

func TestStandard52(t *testing.T) {
	v := cards.Standard52

	assert.Len(t, v.Values(), 13)
	assert.Len(t, v.Ranks(), 4)
	assert.Equal(t, "{VALUE}{RANK}", v.NameScheme())
	assert.Equal(t, cards.PriorityNeutral, v.Priority())

	ace, _ := v.ValueWeight("A")
	king, _ := v.ValueWeight("K")
	two, _ := v.ValueWeight("2")
	assert.Greater(t, ace, king, "ace is high")
	assert.Equal(t, 1, two)

	spades, _ := v.RankWeight("♤")
	hearts, _ := v.RankWeight("♥")
	diamonds, _ := v.RankWeight("♦")
	clubs, _ := v.RankWeight("♧")
	assert.True(t, spades > hearts && hearts > diamonds && diamonds > clubs)
}

func TestPreset(t *testing.T) {
	v, ok := cards.Preset("standard52")
	require.True(t, ok)
	assert.Same(t, cards.Standard52, v)

	v, ok = cards.Preset(cards.KindTarot.String())
	require.True(t, ok)
	assert.Same(t, cards.TarotMinor, v)
	assert.Equal(t, 56, v.Size())

	v, ok = cards.Preset("hanafuda")
	require.True(t, ok)
	assert.Same(t, cards.Hanafuda, v)

	_, ok = cards.Preset("uno")
	assert.False(t, ok)

	assert.Len(t, cards.Presets(), 3)
	assert.Equal(t, "custom", cards.KindCustom.String())
}

func TestHanafuda(t *testing.T) {
	v := cards.Hanafuda
	assert.Equal(t, 48, v.Size())
	assert.Equal(t, cards.PriorityValue, v.Priority())

	deck := cards.New(v, false)
	assert.Equal(t, "Pine I", deck.Cards()[0].Name())

	c, err := v.Compare(cards.NewCard(v, "Pine", "I"), cards.NewCard(v, "Pine", "IV"))
	require.NoError(t, err)
	assert.Equal(t, 1, c, "first card of a month outranks the fourth")

	c, err = v.Compare(cards.NewCard(v, "Paulownia", "IV"), cards.NewCard(v, "Pine", "I"))
	require.NoError(t, err)
	assert.Equal(t, 1, c, "month decides before position")
}
