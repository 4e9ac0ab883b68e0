package service

import (
	"sync"
	"time"

	"github.com/stpnv0/RentalHandover/internal/domain"
)

type sessionKey struct {
	bookingID  string
	checkpoint domain.Checkpoint
	actorID    string
}

type workingSet struct {
	records   []domain.EvidenceRecord
	touchedAt time.Time
}

// WorkingSets holds captured but not yet submitted evidence, per booking, checkpoint and actor.
type WorkingSets struct {
	mu   sync.Mutex
	sets map[sessionKey]*workingSet
}

func NewWorkingSets() *WorkingSets {
	return &WorkingSets{sets: make(map[sessionKey]*workingSet)}
}

func (w *WorkingSets) Add(k sessionKey, rec domain.EvidenceRecord, at time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ws, ok := w.sets[k]
	if !ok {
		ws = &workingSet{}
		w.sets[k] = ws
	}
	ws.records = append(ws.records, rec)
	ws.touchedAt = at
}

func (w *WorkingSets) List(k sessionKey) []domain.EvidenceRecord {
	w.mu.Lock()
	defer w.mu.Unlock()

	ws, ok := w.sets[k]
	if !ok {
		return nil
	}
	out := make([]domain.EvidenceRecord, len(ws.records))
	copy(out, ws.records)
	return out
}

// Update swaps in records that share an id with one in the set, e.g. after a partial upload.
// Records captured since are left alone.
func (w *WorkingSets) Update(k sessionKey, records []domain.EvidenceRecord, at time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ws, ok := w.sets[k]
	if !ok {
		return
	}
	byID := make(map[string]domain.EvidenceRecord, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}
	for i, rec := range ws.records {
		if updated, ok := byID[rec.ID]; ok {
			ws.records[i] = updated
		}
	}
	ws.touchedAt = at
}

// Drop removes the given ids, deleting the set once it is empty.
func (w *WorkingSets) Drop(k sessionKey, ids []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ws, ok := w.sets[k]
	if !ok {
		return
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := ws.records[:0]
	for _, rec := range ws.records {
		if _, ok := drop[rec.ID]; !ok {
			kept = append(kept, rec)
		}
	}
	ws.records = kept
	if len(ws.records) == 0 {
		delete(w.sets, k)
	}
}

// Lookup searches every actor's working set of a checkpoint, returning the owning actor.
func (w *WorkingSets) Lookup(bookingID string, cp domain.Checkpoint, evidenceID string) (domain.EvidenceRecord, string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for k, ws := range w.sets {
		if k.bookingID != bookingID || k.checkpoint != cp {
			continue
		}
		for _, rec := range ws.records {
			if rec.ID == evidenceID {
				return rec, k.actorID, true
			}
		}
	}
	return domain.EvidenceRecord{}, "", false
}

func (w *WorkingSets) Remove(k sessionKey, evidenceID string) (domain.EvidenceRecord, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ws, ok := w.sets[k]
	if !ok {
		return domain.EvidenceRecord{}, false
	}
	for i, rec := range ws.records {
		if rec.ID == evidenceID {
			ws.records = append(ws.records[:i], ws.records[i+1:]...)
			if len(ws.records) == 0 {
				delete(w.sets, k)
			}
			return rec, true
		}
	}
	return domain.EvidenceRecord{}, false
}

// Expire drops working sets untouched since before and returns their records.
func (w *WorkingSets) Expire(before time.Time) []domain.EvidenceRecord {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []domain.EvidenceRecord
	for k, ws := range w.sets {
		if ws.touchedAt.Before(before) {
			out = append(out, ws.records...)
			delete(w.sets, k)
		}
	}
	return out
}
