package memstore

import (
	"sync"

	"korvo/internal/domain/redemption"
	"korvo/internal/pkg/errs"

	"github.com/google/uuid"
)

// Ledger is the ordered record of committed claims for the session.
// Insertion order is the history order; consumers display it
// most-recent-first.
type Ledger struct {
	mu    sync.RWMutex
	items []*redemption.ClaimedItem
	ids   map[uuid.UUID]struct{}
}

func NewLedger() *Ledger {
	return &Ledger{ids: make(map[uuid.UUID]struct{})}
}

// Append adds a claim to the end of the history. A duplicate id is a
// programming defect, reported loudly rather than silently absorbed.
func (l *Ledger) Append(item *redemption.ClaimedItem) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.ids[item.ID()]; exists {
		return errs.Newf("duplicate claim id %s", item.ID())
	}
	l.ids[item.ID()] = struct{}{}
	l.items = append(l.items, item)
	return nil
}

// Remove deletes the claim with the given id. Removing an absent id is
// a no-op; user-initiated cleanup is idempotent.
func (l *Ledger) Remove(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.ids[id]; !exists {
		return
	}
	delete(l.ids, id)
	for i, item := range l.items {
		if item.ID() == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

func (l *Ledger) FindByID(id uuid.UUID) (*redemption.ClaimedItem, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if _, exists := l.ids[id]; !exists {
		return nil, errs.ErrClaimNotFound
	}
	for _, item := range l.items {
		if item.ID() == id {
			return item, nil
		}
	}
	return nil, errs.ErrClaimNotFound
}

// All returns a snapshot of the history in insertion order.
func (l *Ledger) All() []*redemption.ClaimedItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*redemption.ClaimedItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}
