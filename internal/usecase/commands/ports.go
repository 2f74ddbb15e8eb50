package commands

import (
	"korvo/internal/domain/benefit"
	"korvo/internal/domain/business"
	"korvo/internal/domain/redemption"

	"github.com/google/uuid"
)

type CatalogRepository interface {
	FindByID(id int64) (*business.Business, error)
	All() []*business.Business
	// Mutate runs fn against the live record under the store lock; it
	// is the only write path into a business.
	Mutate(id int64, fn func(*business.Business) error) error
	Discounts() []business.Discount
}

type ClaimLedger interface {
	Append(item *redemption.ClaimedItem) error
	Remove(id uuid.UUID)
	FindByID(id uuid.UUID) (*redemption.ClaimedItem, error)
	All() []*redemption.ClaimedItem
	Count() int
}

type FavoritesRepository interface {
	Toggle(businessID int64) (bool, error)
	IsFavorite(businessID int64) (bool, error)
	All() ([]int64, error)
}

type RewardRepository interface {
	Insert(r *benefit.Reward)
	FindByID(id uuid.UUID) (*benefit.Reward, error)
	Mutate(id uuid.UUID, fn func(*benefit.Reward) error) error
	Remove(id uuid.UUID) error
	All() []*benefit.Reward
}

type PromotionRepository interface {
	Insert(p *benefit.Promotion)
	FindByID(id uuid.UUID) (*benefit.Promotion, error)
	Mutate(id uuid.UUID, fn func(*benefit.Promotion) error) error
	Remove(id uuid.UUID) error
	All() []*benefit.Promotion
}
