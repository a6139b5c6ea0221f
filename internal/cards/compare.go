package cards

import (
	"cmp"
	"fmt"
	"slices"
)

// Compare orders two cards by the variation's hierarchies and returns -1, 0
// or +1. With PriorityValue the value hierarchy decides and ranks break ties;
// PriorityRank is the reverse; PriorityNeutral looks at values only.
func (v *Variation) Compare(a, b Card) (int, error) {
	switch v.def.Priority {
	case PriorityValue:
		return v.compareBy(a, b, v.compareValue, v.compareRank)
	case PriorityRank:
		return v.compareBy(a, b, v.compareRank, v.compareValue)
	default:
		return v.compareValue(a, b)
	}
}

type cardCmp func(a, b Card) (int, error)

func (v *Variation) compareBy(a, b Card, first, second cardCmp) (int, error) {
	c, err := first(a, b)
	if err != nil || c != 0 {
		return c, err
	}
	return second(a, b)
}

func (v *Variation) compareValue(a, b Card) (int, error) {
	wa, ok := v.ValueWeight(a.value)
	if !ok {
		return 0, fmt.Errorf("%w: value %q of %s", ErrUnranked, a.value, a.name)
	}
	wb, ok := v.ValueWeight(b.value)
	if !ok {
		return 0, fmt.Errorf("%w: value %q of %s", ErrUnranked, b.value, b.name)
	}
	return cmp.Compare(wa, wb), nil
}

func (v *Variation) compareRank(a, b Card) (int, error) {
	wa, ok := v.RankWeight(a.rank)
	if !ok {
		return 0, fmt.Errorf("%w: rank %q of %s", ErrUnranked, a.rank, a.name)
	}
	wb, ok := v.RankWeight(b.rank)
	if !ok {
		return 0, fmt.Errorf("%w: rank %q of %s", ErrUnranked, b.rank, b.name)
	}
	return cmp.Compare(wa, wb), nil
}

// Sort orders cs from lowest to highest in place. Cards that compare equal
// keep their relative order. On error cs is left untouched.
func (v *Variation) Sort(cs []Card) error {
	for _, c := range cs {
		if err := v.rankable(c); err != nil {
			return err
		}
	}
	slices.SortStableFunc(cs, func(a, b Card) int {
		c, _ := v.Compare(a, b)
		return c
	})
	return nil
}

// Highest returns the first card that no other card in cs beats.
func (v *Variation) Highest(cs []Card) (Card, bool, error) {
	if len(cs) == 0 {
		return Card{}, false, nil
	}
	best := cs[0]
	if err := v.rankable(best); err != nil {
		return Card{}, false, err
	}
	for _, c := range cs[1:] {
		r, err := v.Compare(c, best)
		if err != nil {
			return Card{}, false, err
		}
		if r > 0 {
			best = c
		}
	}
	return best, true, nil
}

// rankable checks that every hierarchy Compare consults knows c. Comparing
// a card with itself always reaches the tie-breaking hierarchy.
func (v *Variation) rankable(c Card) error {
	_, err := v.Compare(c, c)
	return err
}
