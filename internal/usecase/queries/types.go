package queries

import (
	"korvo/internal/domain/benefit"
	"korvo/internal/domain/business"
	"korvo/internal/domain/redemption"
	"korvo/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Read-side ports. The in-memory stores satisfy both these and the
// command ports; queries only get the read surface.

type CatalogReader interface {
	FindByID(id int64) (*business.Business, error)
	All() []*business.Business
	Discounts() []business.Discount
}

type LedgerReader interface {
	FindByID(id uuid.UUID) (*redemption.ClaimedItem, error)
	All() []*redemption.ClaimedItem
	Count() int
}

type FavoritesReader interface {
	IsFavorite(businessID int64) (bool, error)
	All() ([]int64, error)
}

type BenefitReader interface {
	All() []*benefit.Reward
}

type PromotionReader interface {
	All() []*benefit.Promotion
}

type CustomerReader interface {
	All() []readmodel.CustomerView
	Count() int
}

type TransactionReader interface {
	All() []readmodel.ActivityEntryView
}
