package memstore

import (
	"sync"

	"korvo/internal/domain/business"
	"korvo/internal/pkg/errs"
)

// CatalogStore is the in-memory registry of businesses for the session.
// Reads hand out snapshot copies; the only write path is Mutate, which
// holds the store lock for the whole read-then-write step so a debit
// can never act on a balance another request changed underneath it.
type CatalogStore struct {
	mu         sync.RWMutex
	businesses map[int64]*business.Business
	order      []int64
	discounts  []business.Discount
}

func NewCatalogStore(businesses []*business.Business, discounts []business.Discount) *CatalogStore {
	s := &CatalogStore{
		businesses: make(map[int64]*business.Business, len(businesses)),
		order:      make([]int64, 0, len(businesses)),
		discounts:  discounts,
	}
	for _, b := range businesses {
		s.businesses[b.ID()] = b
		s.order = append(s.order, b.ID())
	}
	return s
}

// FindByID returns a snapshot of the business, safe to read without
// holding the store lock.
func (s *CatalogStore) FindByID(id int64) (*business.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.businesses[id]
	if !ok {
		return nil, errs.ErrBusinessNotFound
	}
	return snapshot(b), nil
}

// All returns snapshots in seed order.
func (s *CatalogStore) All() []*business.Business {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*business.Business, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, snapshot(s.businesses[id]))
	}
	return out
}

// Mutate runs fn against the live business record under the write
// lock. fn must be synchronous; an error from fn leaves the record as
// fn left it, so fn must not partially mutate before failing.
func (s *CatalogStore) Mutate(id int64, fn func(*business.Business) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.businesses[id]
	if !ok {
		return errs.ErrBusinessNotFound
	}
	return fn(b)
}

func (s *CatalogStore) Discounts() []business.Discount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]business.Discount, len(s.discounts))
	copy(out, s.discounts)
	return out
}

func (s *CatalogStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.businesses)
}

func snapshot(b *business.Business) *business.Business {
	return business.ReconstructBusiness(
		b.ID(),
		b.Name(), b.Address(), b.Color(), b.CoverURL(), b.RateLabel(), b.LastVisit(),
		b.PointBalance(), b.Stamps(), b.StampGoal(),
		b.Rewards(),
	)
}
