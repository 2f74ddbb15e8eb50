package memstore

import (
	"sync"

	"korvo/internal/domain/benefit"
	"korvo/internal/pkg/errs"

	"github.com/google/uuid"
)

// RewardStore holds the business-admin reward catalog being edited.
type RewardStore struct {
	mu      sync.RWMutex
	rewards map[uuid.UUID]*benefit.Reward
	order   []uuid.UUID
}

func NewRewardStore(rewards []*benefit.Reward) *RewardStore {
	s := &RewardStore{rewards: make(map[uuid.UUID]*benefit.Reward, len(rewards))}
	for _, r := range rewards {
		s.rewards[r.ID()] = r
		s.order = append(s.order, r.ID())
	}
	return s
}

func (s *RewardStore) Insert(r *benefit.Reward) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rewards[r.ID()] = r
	s.order = append(s.order, r.ID())
}

func (s *RewardStore) FindByID(id uuid.UUID) (*benefit.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rewards[id]
	if !ok {
		return nil, errs.ErrRewardNotFound
	}
	return r, nil
}

func (s *RewardStore) Mutate(id uuid.UUID, fn func(*benefit.Reward) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rewards[id]
	if !ok {
		return errs.ErrRewardNotFound
	}
	return fn(r)
}

func (s *RewardStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rewards[id]; !ok {
		return errs.ErrRewardNotFound
	}
	delete(s.rewards, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *RewardStore) All() []*benefit.Reward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*benefit.Reward, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.rewards[id])
	}
	return out
}

// PromotionStore holds the business-admin promotions being edited.
type PromotionStore struct {
	mu         sync.RWMutex
	promotions map[uuid.UUID]*benefit.Promotion
	order      []uuid.UUID
}

func NewPromotionStore(promotions []*benefit.Promotion) *PromotionStore {
	s := &PromotionStore{promotions: make(map[uuid.UUID]*benefit.Promotion, len(promotions))}
	for _, p := range promotions {
		s.promotions[p.ID()] = p
		s.order = append(s.order, p.ID())
	}
	return s
}

func (s *PromotionStore) Insert(p *benefit.Promotion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promotions[p.ID()] = p
	s.order = append(s.order, p.ID())
}

func (s *PromotionStore) FindByID(id uuid.UUID) (*benefit.Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.promotions[id]
	if !ok {
		return nil, errs.ErrPromotionNotFound
	}
	return p, nil
}

func (s *PromotionStore) Mutate(id uuid.UUID, fn func(*benefit.Promotion) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.promotions[id]
	if !ok {
		return errs.ErrPromotionNotFound
	}
	return fn(p)
}

func (s *PromotionStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.promotions[id]; !ok {
		return errs.ErrPromotionNotFound
	}
	delete(s.promotions, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *PromotionStore) All() []*benefit.Promotion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*benefit.Promotion, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.promotions[id])
	}
	return out
}
