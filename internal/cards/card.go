package cards

// Image is an opaque handle to a card's artwork: a URL, a path or an asset
// key. The zero value means no image.
type Image string

// Card is an immutable (value, rank) pair. Two cards are the same card when
// their value and rank tokens match; name and image are presentation only.
type Card struct {
	value     string
	rank      string
	name      string
	image     Image
	variation *Variation
}

// CardOption customizes a card built with NewCard.
type CardOption func(*Card)

// WithName sets an explicit display name instead of the variation's scheme.
func WithName(name string) CardOption {
	return func(c *Card) { c.name = name }
}

// WithImage attaches artwork to the card.
func WithImage(img Image) CardOption {
	return func(c *Card) { c.image = img }
}

// NewCard creates a card for the value and rank display tokens. The name is
// derived from v's name scheme unless WithName is given.
func NewCard(v *Variation, value, rank string, opts ...CardOption) Card {
	c := Card{value: value, rank: rank, variation: v}
	for _, opt := range opts {
		opt(&c)
	}
	switch {
	case c.name != "":
	case v != nil:
		c.name = v.FormatName(value, rank)
	default:
		c.name = value + " OF " + rank
	}
	return c
}

func (c Card) Value() string         { return c.value }
func (c Card) Rank() string          { return c.rank }
func (c Card) Name() string          { return c.name }
func (c Card) Image() Image          { return c.image }
func (c Card) Variation() *Variation { return c.variation }
func (c Card) String() string        { return c.name }

// Equal reports whether c and other have the same value and rank tokens.
func (c Card) Equal(other Card) bool {
	return c.value == other.value && c.rank == other.rank
}
