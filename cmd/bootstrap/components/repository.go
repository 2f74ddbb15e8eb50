package components

import (
	"korvo/internal/infra/localstore"
	"korvo/internal/infra/memstore"
	"korvo/internal/usecase/commands"
	"korvo/internal/usecase/queries"

	"go.uber.org/fx"
)

// RepositoryModule binds the concrete stores to the command and query
// ports. The same store satisfies both sides; queries only see the
// read surface.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			func(s *memstore.CatalogStore) *memstore.CatalogStore { return s },
			fx.As(new(commands.CatalogRepository)),
			fx.As(new(queries.CatalogReader)),
		),
		fx.Annotate(
			func(s *memstore.Ledger) *memstore.Ledger { return s },
			fx.As(new(commands.ClaimLedger)),
			fx.As(new(queries.LedgerReader)),
		),
		fx.Annotate(
			func(s *localstore.FavoritesStore) *localstore.FavoritesStore { return s },
			fx.As(new(commands.FavoritesRepository)),
			fx.As(new(queries.FavoritesReader)),
		),
		fx.Annotate(
			func(s *memstore.RewardStore) *memstore.RewardStore { return s },
			fx.As(new(commands.RewardRepository)),
			fx.As(new(queries.BenefitReader)),
		),
		fx.Annotate(
			func(s *memstore.PromotionStore) *memstore.PromotionStore { return s },
			fx.As(new(commands.PromotionRepository)),
			fx.As(new(queries.PromotionReader)),
		),
		fx.Annotate(
			func(s *memstore.CustomerStore) *memstore.CustomerStore { return s },
			fx.As(new(queries.CustomerReader)),
		),
		fx.Annotate(
			func(s *memstore.TransactionStore) *memstore.TransactionStore { return s },
			fx.As(new(queries.TransactionReader)),
		),
	),
)
