package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"korvo/internal/handler/api"
	"korvo/internal/handler/middleware"
	"korvo/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	walletHandler *api.WalletHandler,
	redemptionHandler *api.RedemptionHandler,
	claimHandler *api.ClaimHandler,
	favoriteHandler *api.FavoriteHandler,
	adminHandler *api.AdminHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, walletHandler, redemptionHandler, claimHandler, favoriteHandler, adminHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	walletHandler *api.WalletHandler,
	redemptionHandler *api.RedemptionHandler,
	claimHandler *api.ClaimHandler,
	favoriteHandler *api.FavoriteHandler,
	adminHandler *api.AdminHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		wallet := apiGroup.Group("/wallet")
		{
			addRoutes(wallet, []route{
				{Method: http.MethodGet, Path: "/cards", Handler: walletHandler.ListCards},
				{Method: http.MethodGet, Path: "/cards/:id", Handler: walletHandler.GetCard},
				{Method: http.MethodGet, Path: "/activity", Handler: walletHandler.Activity},
			})
		}

		redemption := apiGroup.Group("/redemption")
		{
			addRoutes(redemption, []route{
				{Method: http.MethodGet, Path: "", Handler: redemptionHandler.Current},
				{Method: http.MethodPost, Path: "/stage", Handler: redemptionHandler.Stage},
				{Method: http.MethodPost, Path: "/confirm", Handler: redemptionHandler.Confirm},
				{Method: http.MethodPost, Path: "/cancel", Handler: redemptionHandler.Cancel},
			})
		}

		claims := apiGroup.Group("/claims")
		{
			addRoutes(claims, []route{
				{Method: http.MethodGet, Path: "", Handler: claimHandler.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: claimHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/proof", Handler: claimHandler.Proof},
			})
		}

		favorites := apiGroup.Group("/favorites")
		{
			addRoutes(favorites, []route{
				{Method: http.MethodGet, Path: "", Handler: favoriteHandler.List},
				{Method: http.MethodPut, Path: "/:businessId", Handler: favoriteHandler.Toggle},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/rewards", Handler: adminHandler.ListRewards},
				{Method: http.MethodPost, Path: "/rewards", Handler: adminHandler.CreateReward},
				{Method: http.MethodPut, Path: "/rewards/:id", Handler: adminHandler.UpdateReward},
				{Method: http.MethodDelete, Path: "/rewards/:id", Handler: adminHandler.DeleteReward},
				{Method: http.MethodGet, Path: "/promotions", Handler: adminHandler.ListPromotions},
				{Method: http.MethodPost, Path: "/promotions", Handler: adminHandler.CreatePromotion},
				{Method: http.MethodPut, Path: "/promotions/:id", Handler: adminHandler.UpdatePromotion},
				{Method: http.MethodDelete, Path: "/promotions/:id", Handler: adminHandler.DeletePromotion},
				{Method: http.MethodGet, Path: "/customers", Handler: adminHandler.ListCustomers},
				{Method: http.MethodGet, Path: "/dashboard", Handler: adminHandler.Dashboard},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
