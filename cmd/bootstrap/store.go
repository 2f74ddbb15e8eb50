package bootstrap

import (
	"context"

	"korvo/internal/infra/localstore"
	"korvo/internal/infra/memstore"
	"korvo/internal/infra/seed"
	"korvo/internal/pkg/config"
	"korvo/internal/usecase/readmodel"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Provide(
		NewSeed,
		func(s *seed.Seed) readmodel.DashboardStats { return s.Stats },
	),
)

var StoreModule = fx.Module("store",
	fx.Provide(
		func(s *seed.Seed) *memstore.CatalogStore {
			return memstore.NewCatalogStore(s.Businesses, s.Discounts)
		},
		func() *memstore.Ledger {
			return memstore.NewLedger()
		},
		func(s *seed.Seed) *memstore.RewardStore {
			return memstore.NewRewardStore(s.Rewards)
		},
		func(s *seed.Seed) *memstore.PromotionStore {
			return memstore.NewPromotionStore(s.Promotions)
		},
		func(s *seed.Seed) *memstore.CustomerStore {
			return memstore.NewCustomerStore(s.Customers)
		},
		func(s *seed.Seed) *memstore.TransactionStore {
			return memstore.NewTransactionStore(s.Transactions)
		},
		NewFavoritesStore,
	),
)

func NewSeed(cfg config.Config) (*seed.Seed, error) {
	return seed.Load(cfg.Catalog.SeedPath)
}

func NewFavoritesStore(lc fx.Lifecycle, cfg config.Config) (*localstore.FavoritesStore, error) {
	store, err := localstore.Open(cfg.Favorites.DBPath)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
