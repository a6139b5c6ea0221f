package cards

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// NotFound is returned by Search when the card is not in the deck.
const NotFound = -1

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) IntN(n int) int { return rand.IntN(n) }

// Option configures a Deck.
type Option func(*Deck)

// WithRNG sets the source used for shuffling. *rand.Rand satisfies RNG.
func WithRNG(rng RNG) Option {
	return func(d *Deck) { d.rng = rng }
}

// Deck is an ordered pile of cards. The last card is the top of the deck.
//
// A Deck is not safe for concurrent use; callers sharing one must serialize
// whole draw/shuffle/reset sequences themselves.
type Deck struct {
	variation  *Variation
	cards      []Card
	randomInit bool
	rng        RNG
}

// New builds a deck holding one card per value and rank of v, in canonical
// order (values outer, ranks inner), shuffled if randomInit is set.
func New(v *Variation, randomInit bool, opts ...Option) *Deck {
	d := &Deck{variation: v, randomInit: randomInit, rng: stdRNG{}}
	for _, opt := range opts {
		opt(d)
	}
	d.build()
	return d
}

func (d *Deck) build() {
	values, ranks := d.variation.def.Values, d.variation.def.Ranks
	d.cards = make([]Card, 0, len(values)*len(ranks))
	for _, val := range values {
		for _, rank := range ranks {
			d.cards = append(d.cards, NewCard(d.variation, val.Display, rank.Display))
		}
	}
	if d.randomInit {
		d.Shuffle()
	}
}

func (d *Deck) Size() int             { return len(d.cards) }
func (d *Deck) Variation() *Variation { return d.variation }
func (d *Deck) RandomInit() bool      { return d.randomInit }

// SetRandomInit changes whether Reset shuffles the rebuilt deck. The current
// order is left alone.
func (d *Deck) SetRandomInit(random bool) { d.randomInit = random }

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card { return slices.Clone(d.cards) }

// Shuffle permutes the remaining cards uniformly at random (Fisher-Yates).
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw takes n cards off the top of the deck, top card first. If fewer than
// n cards remain, or n is negative, nothing is drawn and ok is false.
func (d *Deck) Draw(n int) (ok bool, drawn []Card) {
	if n < 0 || n > len(d.cards) {
		return false, nil
	}
	rest := len(d.cards) - n
	drawn = slices.Clone(d.cards[rest:])
	slices.Reverse(drawn)
	clear(d.cards[rest:])
	d.cards = d.cards[:rest]
	return true, drawn
}

// Search returns the index of the first card equal to c, counting from the
// bottom of the deck, or NotFound.
func (d *Deck) Search(c Card) int {
	return slices.IndexFunc(d.cards, c.Equal)
}

// Reset rebuilds the full deck from its variation. It is shuffled again when
// random init is set, otherwise canonical order is restored.
func (d *Deck) Reset() {
	d.build()
}

func (d *Deck) String() string {
	var b strings.Builder
	if len(d.cards) == 1 {
		b.WriteString("1 card\n")
	} else {
		fmt.Fprintf(&b, "%d cards\n", len(d.cards))
	}
	for _, c := range d.cards {
		b.WriteString(c.name)
		b.WriteByte('\n')
	}
	return b.String()
}
