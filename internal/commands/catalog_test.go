package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckhand/internal/cards"
	"deckhand/internal/database"
)

type fakeStore struct {
	defs   map[string]cards.Definition
	err    error
	failOn string
}

func newFakeStore() *fakeStore {
	return &fakeStore{defs: make(map[string]cards.Definition)}
}

func (f *fakeStore) SaveVariation(v *cards.Variation, _ string) error {
	if f.err != nil {
		return f.err
	}
	if v.Name() == f.failOn {
		return errors.New("disk full")
	}
	f.defs[v.Name()] = v.Definition()
	return nil
}

func (f *fakeStore) GetVariation(name string) (*cards.Variation, error) {
	if f.err != nil {
		return nil, f.err
	}
	def, ok := f.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", database.ErrVariationNotFound, name)
	}
	return cards.NewVariation(def)
}

func (f *fakeStore) ListVariations() ([]*cards.Variation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*cards.Variation
	for _, def := range f.defs {
		out = append(out, cards.MustVariation(def))
	}
	return out, nil
}

func (f *fakeStore) DeleteVariation(name string) (bool, error) {
	_, ok := f.defs[name]
	delete(f.defs, name)
	return ok, f.err
}

func coinVariation(name string) *cards.Variation {
	return cards.MustVariation(cards.Definition{
		Name:   name,
		Values: []cards.Token{{Name: "HEADS", Display: "h"}, {Name: "TAILS", Display: "t"}},
		Ranks:  []cards.Token{{Name: "COIN", Display: "c"}},
	})
}

func TestCatalog_Lookup(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.SaveVariation(coinVariation("stored"), "u"))
	catalog := NewCatalog(store, []*cards.Variation{coinVariation("fromfile")})

	v, err := catalog.Lookup("standard52")
	require.NoError(t, err)
	assert.Same(t, cards.Standard52, v)

	v, err = catalog.Lookup(" fromfile ")
	require.NoError(t, err)
	assert.Equal(t, "fromfile", v.Name())

	v, err = catalog.Lookup("stored")
	require.NoError(t, err)
	assert.Equal(t, 2, v.Size())

	_, err = catalog.Lookup("missing")
	assert.ErrorIs(t, err, ErrUnknownVariation)

	store.err = errors.New("disk on fire")
	_, err = catalog.Lookup("missing")
	assert.NotErrorIs(t, err, ErrUnknownVariation)
}

func TestCatalog_PresetsShadowLoaded(t *testing.T) {
	catalog := NewCatalog(nil, []*cards.Variation{coinVariation("standard52")})

	v, err := catalog.Lookup("standard52")
	require.NoError(t, err)
	assert.Same(t, cards.Standard52, v)

	vs, err := catalog.List()
	require.NoError(t, err)
	assert.Len(t, vs, 3)
}

func TestCatalog_List(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.SaveVariation(coinVariation("zeta"), "u"))
	require.NoError(t, store.SaveVariation(coinVariation("alpha"), "u"))
	catalog := NewCatalog(store, []*cards.Variation{coinVariation("mid")})

	vs, err := catalog.List()
	require.NoError(t, err)

	var got []string
	for _, v := range vs {
		got = append(got, v.Name())
	}
	assert.Equal(t, []string{"standard52", "tarot", "hanafuda", "alpha", "mid", "zeta"}, got)
}

func TestCatalog_SaveRemove(t *testing.T) {
	store := newFakeStore()
	catalog := NewCatalog(store, nil)

	err := catalog.Save(coinVariation("tarot"), "u")
	assert.ErrorIs(t, err, ErrBuiltinVariation)
	assert.ErrorIs(t, catalog.Remove("standard52"), ErrBuiltinVariation)

	require.NoError(t, catalog.Save(coinVariation("coins"), "u"))
	_, err = catalog.Lookup("coins")
	require.NoError(t, err)

	require.NoError(t, catalog.Remove("coins"))
	assert.ErrorIs(t, catalog.Remove("coins"), ErrUnknownVariation)
}

func TestCatalog_SaveAll(t *testing.T) {
	store := newFakeStore()
	catalog := NewCatalog(store, nil)

	err := catalog.SaveAll([]*cards.Variation{coinVariation("coins"), coinVariation("standard52")}, "u")
	assert.ErrorIs(t, err, ErrBuiltinVariation)
	assert.Empty(t, store.defs, "nothing is saved when any name is built in")

	store.failOn = "second"
	err = catalog.SaveAll([]*cards.Variation{coinVariation("first"), coinVariation("second")}, "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already saved: first")

	store.failOn = ""
	require.NoError(t, catalog.SaveAll([]*cards.Variation{coinVariation("first"), coinVariation("second")}, "u"))
	assert.Len(t, store.defs, 2)
}
