// Package cards models playing-card decks: pluggable variations describing
// values, ranks (suits) and their orderings, the cards they produce, and a
// mutable deck supporting shuffle, draw, search and reset.
package cards

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Name scheme placeholders.
const (
	PlaceholderValue = "{VALUE}"
	PlaceholderRank  = "{RANK}"

	DefaultNameScheme = PlaceholderValue + " OF " + PlaceholderRank
)

// Token pairs a symbolic name (e.g. "ACE") with its display form (e.g. "A").
type Token struct {
	Name    string `yaml:"name" json:"name"`
	Display string `yaml:"token" json:"token"`
}

// Priority selects which hierarchy dominates when two cards are compared.
type Priority int

const (
	PriorityNeutral Priority = iota
	PriorityValue
	PriorityRank
)

func (p Priority) String() string {
	switch p {
	case PriorityValue:
		return "VALUE"
	case PriorityRank:
		return "RANK"
	default:
		return "NEUTRAL"
	}
}

func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(b []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(b))) {
	case "", "NEUTRAL":
		*p = PriorityNeutral
	case "VALUE":
		*p = PriorityValue
	case "RANK":
		*p = PriorityRank
	default:
		return fmt.Errorf("unknown priority %q", string(b))
	}
	return nil
}

// Definition is the raw description a Variation is built from.
type Definition struct {
	Name           string         `yaml:"name" json:"name"`
	Values         []Token        `yaml:"values" json:"values"`
	Ranks          []Token        `yaml:"ranks" json:"ranks"`
	ValueHierarchy map[string]int `yaml:"value_hierarchy,omitempty" json:"value_hierarchy,omitempty"`
	RankHierarchy  map[string]int `yaml:"rank_hierarchy,omitempty" json:"rank_hierarchy,omitempty"`
	Priority       Priority       `yaml:"priority" json:"priority"`
	NameScheme     string         `yaml:"name_scheme,omitempty" json:"name_scheme,omitempty"`
}

// Variation is an immutable deck configuration. A single *Variation may be
// shared by any number of decks and goroutines.
type Variation struct {
	def Definition

	// display token -> symbolic name
	valueNames map[string]string
	rankNames  map[string]string
}

// NewVariation validates def and builds a Variation from a private copy of it.
func NewVariation(def Definition) (*Variation, error) {
	def = cloneDefinition(def)
	// Names are looked up trimmed, so a padded name could never be found.
	if def.Name != strings.TrimSpace(def.Name) {
		return nil, fmt.Errorf("%w: name %q has surrounding whitespace", ErrInvalidVariation, def.Name)
	}
	if def.NameScheme == "" {
		def.NameScheme = DefaultNameScheme
	}

	valueNames, err := indexTokens("value", def.Values)
	if err != nil {
		return nil, err
	}
	rankNames, err := indexTokens("rank", def.Ranks)
	if err != nil {
		return nil, err
	}
	if err := checkHierarchy("value", def.ValueHierarchy, def.Values); err != nil {
		return nil, err
	}
	if err := checkHierarchy("rank", def.RankHierarchy, def.Ranks); err != nil {
		return nil, err
	}

	return &Variation{
		def:        def,
		valueNames: valueNames,
		rankNames:  rankNames,
	}, nil
}

// MustVariation is like NewVariation but panics on an invalid definition.
func MustVariation(def Definition) *Variation {
	v, err := NewVariation(def)
	if err != nil {
		panic(err)
	}
	return v
}

func indexTokens(kind string, tokens []Token) (map[string]string, error) {
	names := make(map[string]bool, len(tokens))
	byDisplay := make(map[string]string, len(tokens))
	for _, t := range tokens {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: %s with empty name", ErrInvalidVariation, kind)
		}
		if names[t.Name] {
			return nil, fmt.Errorf("%w: duplicate %s name %q", ErrInvalidVariation, kind, t.Name)
		}
		if _, dup := byDisplay[t.Display]; dup {
			return nil, fmt.Errorf("%w: duplicate %s token %q", ErrInvalidVariation, kind, t.Display)
		}
		names[t.Name] = true
		byDisplay[t.Display] = t.Name
	}
	return byDisplay, nil
}

func checkHierarchy(kind string, hierarchy map[string]int, tokens []Token) error {
	for key := range hierarchy {
		if !slices.ContainsFunc(tokens, func(t Token) bool { return t.Name == key }) {
			return fmt.Errorf("%w: %s hierarchy key %q has no matching %s", ErrInvalidVariation, kind, key, kind)
		}
	}
	return nil
}

func cloneDefinition(def Definition) Definition {
	def.Values = slices.Clone(def.Values)
	def.Ranks = slices.Clone(def.Ranks)
	def.ValueHierarchy = maps.Clone(def.ValueHierarchy)
	def.RankHierarchy = maps.Clone(def.RankHierarchy)
	return def
}

func (v *Variation) Name() string                   { return v.def.Name }
func (v *Variation) Values() []Token                { return slices.Clone(v.def.Values) }
func (v *Variation) Ranks() []Token                 { return slices.Clone(v.def.Ranks) }
func (v *Variation) ValueHierarchy() map[string]int { return maps.Clone(v.def.ValueHierarchy) }
func (v *Variation) RankHierarchy() map[string]int  { return maps.Clone(v.def.RankHierarchy) }
func (v *Variation) Priority() Priority             { return v.def.Priority }
func (v *Variation) NameScheme() string             { return v.def.NameScheme }

// Definition returns a copy of the definition the variation was built from,
// with defaults applied.
func (v *Variation) Definition() Definition { return cloneDefinition(v.def) }

// Size is the number of cards in a freshly built deck.
func (v *Variation) Size() int { return len(v.def.Values) * len(v.def.Ranks) }

// ValueName maps a value display token back to its symbolic name.
func (v *Variation) ValueName(display string) (string, bool) {
	name, ok := v.valueNames[display]
	return name, ok
}

// RankName maps a rank display token back to its symbolic name.
func (v *Variation) RankName(display string) (string, bool) {
	name, ok := v.rankNames[display]
	return name, ok
}

// ValueWeight returns the value hierarchy weight for a value display token.
func (v *Variation) ValueWeight(display string) (int, bool) {
	return weight(v.valueNames, v.def.ValueHierarchy, display)
}

// RankWeight returns the rank hierarchy weight for a rank display token.
func (v *Variation) RankWeight(display string) (int, bool) {
	return weight(v.rankNames, v.def.RankHierarchy, display)
}

func weight(names map[string]string, hierarchy map[string]int, display string) (int, bool) {
	name, ok := names[display]
	if !ok {
		return 0, false
	}
	w, ok := hierarchy[name]
	return w, ok
}

// FormatName renders the name scheme for a value and rank token. Tokens are
// substituted in a single pass, so a token that itself contains a
// placeholder is not expanded again.
func (v *Variation) FormatName(value, rank string) string {
	return strings.NewReplacer(PlaceholderValue, value, PlaceholderRank, rank).Replace(v.def.NameScheme)
}
