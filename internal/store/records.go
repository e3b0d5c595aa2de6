package store

import (
	"encoding/json"
	"fmt"
)

// Key layout. Versioned so a future format change can't misread old rows.
const keyVersion = "v1"

func usedKey(game, age string) string {
	return fmt.Sprintf("kidslearn_used_%s_ids_%s_%s", game, age, keyVersion)
}

func dailyKey(game, age, date string) string {
	return fmt.Sprintf("kidslearn_daily_%s_done_%s_%s_%s", game, age, date, keyVersion)
}

// DailyResult is the persisted outcome of one completed daily session.
type DailyResult struct {
	Done  bool `json:"done"`
	Score int  `json:"score"`
}

// Records wraps a KV with the typed reads and writes the games use.
// Malformed stored data always reads as no history.
type Records struct {
	kv KV
}

// NewRecords creates a Records view over kv.
func NewRecords(kv KV) *Records {
	return &Records{kv: kv}
}

// UsedIDs returns the item ids already shown in the current no-repeat
// cycle for one game and age band.
func (r *Records) UsedIDs(game, age string) []string {
	raw, ok := r.kv.Get(usedKey(game, age))
	if !ok {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil
	}
	return ids
}

// MarkUsed adds id to the used set for one game and age band. Already
// recorded ids are left alone.
func (r *Records) MarkUsed(game, age, id string) {
	ids := r.UsedIDs(game, age)
	for _, existing := range ids {
		if existing == id {
			return
		}
	}
	r.writeUsed(game, age, append(ids, id))
}

// ResetUsed clears the used set, starting a fresh no-repeat cycle.
func (r *Records) ResetUsed(game, age string) {
	r.writeUsed(game, age, []string{})
}

func (r *Records) writeUsed(game, age string, ids []string) {
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	r.kv.Put(usedKey(game, age), raw)
}

// DailyResult returns the completion record for one game, age band, and
// ISO date, and whether one exists.
func (r *Records) DailyResult(game, age, date string) (DailyResult, bool) {
	raw, ok := r.kv.Get(dailyKey(game, age, date))
	if !ok {
		return DailyResult{}, false
	}
	var res DailyResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return DailyResult{}, false
	}
	return res, true
}

// SetDailyResult records a finished daily session with its final score.
func (r *Records) SetDailyResult(game, age, date string, score int) {
	raw, err := json.Marshal(DailyResult{Done: true, Score: score})
	if err != nil {
		return
	}
	r.kv.Put(dailyKey(game, age, date), raw)
}
