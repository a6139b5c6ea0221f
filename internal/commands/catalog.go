package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"deckhand/internal/cards"
	"deckhand/internal/database"
)

var (
	ErrUnknownVariation = errors.New("unknown variation")
	ErrBuiltinVariation = errors.New("built-in variations cannot be changed")
)

// VariationStore persists custom variation definitions. *database.DB
// implements it.
type VariationStore interface {
	SaveVariation(v *cards.Variation, createdBy string) error
	GetVariation(name string) (*cards.Variation, error)
	ListVariations() ([]*cards.Variation, error)
	DeleteVariation(name string) (bool, error)
}

// Catalog resolves variation names. Built-in presets win over variations
// loaded from a file at startup, which win over the store.
type Catalog struct {
	store VariationStore

	mu     sync.RWMutex
	loaded map[string]*cards.Variation
}

func NewCatalog(store VariationStore, loaded []*cards.Variation) *Catalog {
	c := &Catalog{store: store, loaded: make(map[string]*cards.Variation, len(loaded))}
	for _, v := range loaded {
		if _, builtin := cards.Preset(v.Name()); builtin {
			continue
		}
		c.loaded[v.Name()] = v
	}
	return c
}

// Lookup finds a variation by name.
func (c *Catalog) Lookup(name string) (*cards.Variation, error) {
	name = strings.TrimSpace(name)
	if v, ok := cards.Preset(name); ok {
		return v, nil
	}

	c.mu.RLock()
	v, ok := c.loaded[name]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	if c.store == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariation, name)
	}
	v, err := c.store.GetVariation(name)
	if errors.Is(err, database.ErrVariationNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariation, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load variation %s: %w", name, err)
	}
	return v, nil
}

// List returns every known variation: presets, then file-loaded and stored
// variations sorted by name.
func (c *Catalog) List() ([]*cards.Variation, error) {
	out := cards.Presets()

	byName := make(map[string]*cards.Variation)
	if c.store != nil {
		stored, err := c.store.ListVariations()
		if err != nil {
			return nil, fmt.Errorf("list variations: %w", err)
		}
		for _, v := range stored {
			byName[v.Name()] = v
		}
	}
	c.mu.RLock()
	for name, v := range c.loaded {
		byName[name] = v
	}
	c.mu.RUnlock()

	var custom []*cards.Variation
	for name, v := range byName {
		if _, builtin := cards.Preset(name); !builtin {
			custom = append(custom, v)
		}
	}
	slices.SortFunc(custom, func(a, b *cards.Variation) int { return strings.Compare(a.Name(), b.Name()) })
	return append(out, custom...), nil
}

// Save stores a custom variation.
func (c *Catalog) Save(v *cards.Variation, createdBy string) error {
	if _, builtin := cards.Preset(v.Name()); builtin {
		return fmt.Errorf("%w: %s", ErrBuiltinVariation, v.Name())
	}
	if c.store == nil {
		return errors.New("no variation store configured")
	}
	if err := c.store.SaveVariation(v, createdBy); err != nil {
		return fmt.Errorf("save variation %s: %w", v.Name(), err)
	}
	// A stored definition replaces one loaded from file.
	c.mu.Lock()
	delete(c.loaded, v.Name())
	c.mu.Unlock()
	return nil
}

// SaveAll stores every variation in vs. Built-in names are rejected before
// anything is written. If the store fails part way, the error names the
// variations that were already saved.
func (c *Catalog) SaveAll(vs []*cards.Variation, createdBy string) error {
	for _, v := range vs {
		if _, builtin := cards.Preset(v.Name()); builtin {
			return fmt.Errorf("%w: %s", ErrBuiltinVariation, v.Name())
		}
	}
	var saved []string
	for _, v := range vs {
		if err := c.Save(v, createdBy); err != nil {
			if len(saved) > 0 {
				return fmt.Errorf("%w (already saved: %s)", err, strings.Join(saved, ", "))
			}
			return err
		}
		saved = append(saved, v.Name())
	}
	return nil
}

// Remove deletes a stored custom variation.
func (c *Catalog) Remove(name string) error {
	if _, builtin := cards.Preset(name); builtin {
		return fmt.Errorf("%w: %s", ErrBuiltinVariation, name)
	}
	if c.store == nil {
		return fmt.Errorf("%w: %s", ErrUnknownVariation, name)
	}
	ok, err := c.store.DeleteVariation(name)
	if err != nil {
		return fmt.Errorf("remove variation %s: %w", name, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVariation, name)
	}
	return nil
}
