package components

import (
	"korvo/internal/handler"
	"korvo/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWalletHandler,
		api.NewRedemptionHandler,
		api.NewClaimHandler,
		api.NewFavoriteHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
