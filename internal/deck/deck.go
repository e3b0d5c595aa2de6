package deck

import (
	"math/rand/v2"

	"kidslearn/internal/content"
	"kidslearn/internal/store"
)

// Mode selects how items are drawn from the bank.
type Mode string

const (
	// ModePractice shuffles unused items and never repeats one until the
	// whole filtered pool has been shown.
	ModePractice Mode = "practice"

	// ModeDaily pins a single item per calendar day and age band.
	ModeDaily Mode = "daily"
)

// Deck is the ordered sequence of items selected for one session.
// Rebuilt whenever age band, mode, or date changes; never persisted.
type Deck struct {
	Items []content.Item
	Mode  Mode
}

// Empty reports whether the deck has no content to play.
func (d Deck) Empty() bool {
	return len(d.Items) == 0
}

// Engine selects items from a bank, tracking usage through Records so
// practice sessions never repeat an item until the pool is exhausted.
type Engine struct {
	bank *content.Bank
	recs *store.Records
	rng  *rand.Rand
}

// NewEngine creates an Engine over bank. A nil rng gets a fresh seed.
func NewEngine(bank *content.Bank, recs *store.Records, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{bank: bank, recs: recs, rng: rng}
}

// Build produces the deck for one session.
//
// Practice: the filtered pool minus already-used ids, shuffled. When every
// item has been used the usage record is cleared and the cycle restarts
// with the full pool.
//
// Daily: exactly one item, picked deterministically from today and the age
// band so the whole day serves the same item regardless of call order.
//
// An empty filtered pool yields an empty deck; callers surface that as a
// no-content state.
func (e *Engine) Build(age content.AgeTag, mode Mode, today string) Deck {
	pool := e.bank.ForAge(age)
	if len(pool) == 0 {
		return Deck{Mode: mode}
	}

	if mode == ModeDaily {
		idx := DailyIndex(today, age, len(pool))
		return Deck{Items: []content.Item{pool[idx]}, Mode: mode}
	}

	used := e.recs.UsedIDs(e.bank.Game(), string(age))
	available := withoutIDs(pool, used)
	if len(available) == 0 {
		// Cycle exhausted: wrap around.
		e.recs.ResetUsed(e.bank.Game(), string(age))
		available = pool
	}

	e.shuffle(available)
	return Deck{Items: available, Mode: ModePractice}
}

// MarkStarted records that an item has been offered, so a reload
// mid-session cannot re-offer it. Only practice sessions track usage.
func (e *Engine) MarkStarted(age content.AgeTag, id string) {
	e.recs.MarkUsed(e.bank.Game(), string(age), id)
}

// Refill returns a fresh shuffle of the full filtered pool, for when a
// practice deck runs out before the session reaches its question target.
func (e *Engine) Refill(age content.AgeTag) []content.Item {
	pool := e.bank.ForAge(age)
	e.shuffle(pool)
	return pool
}

func (e *Engine) shuffle(items []content.Item) {
	e.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

func withoutIDs(items []content.Item, ids []string) []content.Item {
	excluded := make(map[string]bool, len(ids))
	for _, id := range ids {
		excluded[id] = true
	}
	var out []content.Item
	for _, it := range items {
		if !excluded[it.ID] {
			out = append(out, it)
		}
	}
	return out
}

// DailyIndex maps a date and age band onto an index into a pool of size n.
// Same inputs always give the same index for the whole calendar day.
func DailyIndex(today string, age content.AgeTag, n int) int {
	if n == 0 {
		return 0
	}
	return int(hash31(today+":"+string(age)) % uint32(n))
}

// hash31 is the classic 31-multiplier rolling string hash with unsigned
// 32-bit wraparound.
func hash31(s string) uint32 {
	var h uint32
	for _, c := range s {
		h = h*31 + uint32(c)
	}
	return h
}
