package commands

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deckhand/internal/cards"
)

var (
	ErrNoTable    = errors.New("no open deck")
	ErrDrawLimit  = errors.New("draw count out of range")
	ErrEmptyToken = errors.New("value and rank are required")
)

// Event describes a change to a user's deck.
type Event struct {
	TableID   string
	UserID    string
	Username  string
	Action    string
	Detail    string
	Remaining int
	At        time.Time
}

// Auditor receives deck events.
type Auditor interface {
	DeckEvent(Event)
}

type nopAuditor struct{}

func (nopAuditor) DeckEvent(Event) {}

// Table is one user's deck. Its mutex serializes every operation on the
// deck, which itself has no locking.
type Table struct {
	ID       string
	UserID   string
	Username string
	Opened   time.Time

	mu   sync.Mutex
	deck *cards.Deck
}

// Tables keeps one deck per user.
type Tables struct {
	catalog *Catalog
	maxDraw int
	audit   Auditor
	logger  *zap.Logger
	opts    []cards.Option

	mu     sync.Mutex
	tables map[string]*Table
}

// NewTables creates an empty registry. opts apply to every deck it opens, so
// an RNG given through them must be safe for concurrent use.
func NewTables(catalog *Catalog, maxDraw int, audit Auditor, logger *zap.Logger, opts ...cards.Option) *Tables {
	if audit == nil {
		audit = nopAuditor{}
	}
	return &Tables{
		catalog: catalog,
		maxDraw: maxDraw,
		audit:   audit,
		logger:  logger,
		opts:    opts,
		tables:  make(map[string]*Table),
	}
}

// User identifies who is acting on a table.
type User struct {
	ID       string
	Username string
}

func (t *Tables) get(user User) (*Table, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	tbl, ok := t.tables[user.ID]
	if !ok {
		return nil, ErrNoTable
	}
	return tbl, nil
}

func (t *Tables) emit(tbl *Table, user User, action, detail string) {
	ev := Event{
		TableID:   tbl.ID,
		UserID:    user.ID,
		Username:  user.Username,
		Action:    action,
		Detail:    detail,
		Remaining: tbl.deck.Size(),
		At:        time.Now(),
	}
	t.logger.Debug("deck event",
		zap.String("table_id", ev.TableID),
		zap.String("user_id", ev.UserID),
		zap.String("action", ev.Action),
		zap.Int("remaining", ev.Remaining),
	)
	t.audit.DeckEvent(ev)
}

// Open builds a fresh deck for user, replacing any deck they had.
func (t *Tables) Open(user User, variation string, shuffled bool) (string, error) {
	v, err := t.catalog.Lookup(variation)
	if err != nil {
		return "", err
	}

	tbl := &Table{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Username: user.Username,
		Opened:   time.Now(),
		deck:     cards.New(v, shuffled, t.opts...),
	}

	// Hold the new table until its open event is out, so no other operation
	// on it is audited first.
	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	t.mu.Lock()
	old := t.tables[user.ID]
	t.tables[user.ID] = tbl
	t.mu.Unlock()

	if old != nil {
		old.mu.Lock()
		t.emit(old, user, "close", "replaced")
		old.mu.Unlock()
	}
	size := tbl.deck.Size()
	t.emit(tbl, user, "open", v.Name())

	order := "canonical order"
	if shuffled {
		order = "shuffled"
	}
	return fmt.Sprintf("🃏 New **%s** deck (%s), **%d** cards.", v.Name(), order, size), nil
}

// Draw takes n cards from the top of user's deck.
func (t *Tables) Draw(user User, n int) (string, error) {
	if n < 1 || n > t.maxDraw {
		return "", fmt.Errorf("%w: must be between 1 and %d", ErrDrawLimit, t.maxDraw)
	}
	tbl, err := t.get(user)
	if err != nil {
		return "", err
	}

	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	left := tbl.deck.Size()
	ok, drawn := tbl.deck.Draw(n)
	if !ok {
		return fmt.Sprintf("Only **%d** card(s) left, nothing drawn.", left), nil
	}
	hand := formatCards(drawn)
	t.emit(tbl, user, "draw", hand)

	var b strings.Builder
	fmt.Fprintf(&b, "You drew %s\n", hand)
	// Variations without a full ordering have no high card.
	if high, ok, err := tbl.deck.Variation().Highest(drawn); err == nil && ok && len(drawn) > 1 {
		fmt.Fprintf(&b, "High card: `%s`\n", high)
	}
	fmt.Fprintf(&b, "**%d** card(s) left.", tbl.deck.Size())
	return b.String(), nil
}

// Shuffle shuffles the cards remaining in user's deck.
func (t *Tables) Shuffle(user User) (string, error) {
	tbl, err := t.get(user)
	if err != nil {
		return "", err
	}

	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	tbl.deck.Shuffle()
	t.emit(tbl, user, "shuffle", "")
	return fmt.Sprintf("🔀 Shuffled **%d** card(s).", tbl.deck.Size()), nil
}

// Search reports where a card sits in user's deck.
func (t *Tables) Search(user User, value, rank string) (string, error) {
	value, rank = strings.TrimSpace(value), strings.TrimSpace(rank)
	if value == "" || rank == "" {
		return "", ErrEmptyToken
	}
	tbl, err := t.get(user)
	if err != nil {
		return "", err
	}

	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	probe := cards.NewCard(tbl.deck.Variation(), value, rank)
	idx := tbl.deck.Search(probe)
	if idx == cards.NotFound {
		return fmt.Sprintf("`%s` is not in your deck.", probe), nil
	}
	fromTop := tbl.deck.Size() - idx
	return fmt.Sprintf("`%s` is card **%d** from the top.", probe, fromTop), nil
}

// Reset rebuilds user's deck to its full composition.
func (t *Tables) Reset(user User) (string, error) {
	tbl, err := t.get(user)
	if err != nil {
		return "", err
	}

	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	tbl.deck.Reset()
	t.emit(tbl, user, "reset", "")
	order := "canonical order"
	if tbl.deck.RandomInit() {
		order = "shuffled"
	}
	return fmt.Sprintf("♻️ Deck reset to **%d** cards (%s).", tbl.deck.Size(), order), nil
}

// SetAutoShuffle sets whether future resets shuffle user's deck.
func (t *Tables) SetAutoShuffle(user User, on bool) (string, error) {
	tbl, err := t.get(user)
	if err != nil {
		return "", err
	}

	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	tbl.deck.SetRandomInit(on)
	if on {
		return "Resets will shuffle the deck.", nil
	}
	return "Resets will restore canonical order.", nil
}

// Show lists user's deck from bottom to top, truncated to fit a message.
func (t *Tables) Show(user User) (string, error) {
	tbl, err := t.get(user)
	if err != nil {
		return "", err
	}

	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	return fmt.Sprintf("**%s** deck\n```\n%s```", tbl.deck.Variation().Name(), truncate(tbl.deck.String(), 1800)), nil
}

// Close discards user's deck.
func (t *Tables) Close(user User) (string, error) {
	t.mu.Lock()
	tbl, ok := t.tables[user.ID]
	delete(t.tables, user.ID)
	t.mu.Unlock()
	if !ok {
		return "", ErrNoTable
	}

	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	t.emit(tbl, user, "close", "")
	return "Deck put away.", nil
}

// Len reports how many decks are open.
func (t *Tables) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.tables)
}

func formatCards(cs []cards.Card) string {
	if len(cs) == 0 {
		return "None"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = "`" + c.Name() + "`"
	}
	return strings.Join(parts, " ")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := strings.LastIndexByte(s[:limit], '\n')
	if cut < 0 {
		cut = limit
	}
	return s[:cut+1] + "…\n"
}
