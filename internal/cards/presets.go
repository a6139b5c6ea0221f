package cards

import "slices"

// Kind identifies where a variation comes from.
type Kind int

const (
	KindCustom Kind = iota - 1
	KindStandard52
	KindTarot
	KindHanafuda
)

func (k Kind) String() string {
	switch k {
	case KindStandard52:
		return "standard52"
	case KindTarot:
		return "tarot"
	case KindHanafuda:
		return "hanafuda"
	default:
		return "custom"
	}
}

// Standard52 is the classic French-suited deck. Ace ranks above King.
var Standard52 = MustVariation(Definition{
	Name: KindStandard52.String(),
	Values: []Token{
		{"ACE", "A"}, {"TWO", "2"}, {"THREE", "3"}, {"FOUR", "4"},
		{"FIVE", "5"}, {"SIX", "6"}, {"SEVEN", "7"}, {"EIGHT", "8"},
		{"NINE", "9"}, {"TEN", "10"}, {"JACK", "J"}, {"QUEEN", "Q"}, {"KING", "K"},
	},
	Ranks: []Token{
		{"SPADES", "♤"}, {"CLUBS", "♧"},
		{"HEARTS", "♥"}, {"DIAMONDS", "♦"},
	},
	ValueHierarchy: map[string]int{
		"ACE": 13, "TWO": 1, "THREE": 2, "FOUR": 3,
		"FIVE": 4, "SIX": 5, "SEVEN": 6, "EIGHT": 7,
		"NINE": 8, "TEN": 9, "JACK": 10, "QUEEN": 11, "KING": 12,
	},
	RankHierarchy: map[string]int{
		"SPADES": 4, "CLUBS": 1, "HEARTS": 3, "DIAMONDS": 2,
	},
	Priority:   PriorityNeutral,
	NameScheme: PlaceholderValue + PlaceholderRank,
})

// TarotMinor is the 56-card minor arcana. The 22 trumps of the major arcana
// do not fit a value x suit grid and are left to custom variations.
var TarotMinor = MustVariation(Definition{
	Name: KindTarot.String(),
	Values: []Token{
		{"ACE", "Ace"}, {"TWO", "Two"}, {"THREE", "Three"}, {"FOUR", "Four"},
		{"FIVE", "Five"}, {"SIX", "Six"}, {"SEVEN", "Seven"}, {"EIGHT", "Eight"},
		{"NINE", "Nine"}, {"TEN", "Ten"},
		{"PAGE", "Page"}, {"KNIGHT", "Knight"}, {"QUEEN", "Queen"}, {"KING", "King"},
	},
	Ranks: []Token{
		{"WANDS", "Wands"}, {"CUPS", "Cups"}, {"SWORDS", "Swords"}, {"PENTACLES", "Pentacles"},
	},
	ValueHierarchy: map[string]int{
		"ACE": 1, "TWO": 2, "THREE": 3, "FOUR": 4, "FIVE": 5, "SIX": 6, "SEVEN": 7,
		"EIGHT": 8, "NINE": 9, "TEN": 10, "PAGE": 11, "KNIGHT": 12, "QUEEN": 13, "KING": 14,
	},
	RankHierarchy: map[string]int{
		"WANDS": 1, "CUPS": 2, "SWORDS": 3, "PENTACLES": 4,
	},
	Priority: PriorityValue,
})

// Hanafuda is the 48-card Japanese flower deck: one value per month, four
// cards each. Ranks are the card's position within its month, highest first.
// Which cards are brights, animals, ribbons or chaff depends on the game and
// is not modelled.
var Hanafuda = MustVariation(Definition{
	Name: KindHanafuda.String(),
	Values: []Token{
		{"JANUARY", "Pine"}, {"FEBRUARY", "Plum"}, {"MARCH", "Cherry"},
		{"APRIL", "Wisteria"}, {"MAY", "Iris"}, {"JUNE", "Peony"},
		{"JULY", "Clover"}, {"AUGUST", "Pampas"}, {"SEPTEMBER", "Chrysanthemum"},
		{"OCTOBER", "Maple"}, {"NOVEMBER", "Willow"}, {"DECEMBER", "Paulownia"},
	},
	Ranks: []Token{
		{"FIRST", "I"}, {"SECOND", "II"}, {"THIRD", "III"}, {"FOURTH", "IV"},
	},
	ValueHierarchy: map[string]int{
		"JANUARY": 1, "FEBRUARY": 2, "MARCH": 3, "APRIL": 4, "MAY": 5, "JUNE": 6,
		"JULY": 7, "AUGUST": 8, "SEPTEMBER": 9, "OCTOBER": 10, "NOVEMBER": 11, "DECEMBER": 12,
	},
	RankHierarchy: map[string]int{
		"FIRST": 4, "SECOND": 3, "THIRD": 2, "FOURTH": 1,
	},
	Priority:   PriorityValue,
	NameScheme: PlaceholderValue + " " + PlaceholderRank,
})

var presets = []*Variation{Standard52, TarotMinor, Hanafuda}

// Preset looks up a built-in variation by name.
func Preset(name string) (*Variation, bool) {
	i := slices.IndexFunc(presets, func(v *Variation) bool { return v.Name() == name })
	if i < 0 {
		return nil, false
	}
	return presets[i], true
}

// Presets lists the built-in variations.
func Presets() []*Variation {
	return slices.Clone(presets)
}
