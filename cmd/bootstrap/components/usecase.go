package components

import (
	"korvo/internal/domain/redemption"
	"korvo/internal/pkg/clock"
	"korvo/internal/pkg/config"
	"korvo/internal/usecase/commands"
	"korvo/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewEngine,
)

func NewEngine(cfg config.Config, clk clock.Clock) (*redemption.Engine, error) {
	rate, err := redemption.NewRate(cfg.Redemption.PointsPerUnit)
	if err != nil {
		return nil, err
	}
	return redemption.NewEngine(rate, clk), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRedemptionCommands,
		commands.NewClaimCommands,
		commands.NewFavoriteCommands,
		commands.NewBenefitCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewWalletQueries,
		queries.NewClaimQueries,
		queries.NewActivityQueries,
		queries.NewAdminQueries,
	),
)
