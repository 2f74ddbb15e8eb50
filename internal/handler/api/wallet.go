package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "korvo/internal/handler/dto/response"
	"korvo/internal/pkg/errs"
	"korvo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletQueries   queries.WalletQueries
	activityQueries queries.ActivityQueries
}

func NewWalletHandler(walletQueries queries.WalletQueries, activityQueries queries.ActivityQueries) *WalletHandler {
	return &WalletHandler{
		walletQueries:   walletQueries,
		activityQueries: activityQueries,
	}
}

// @Summary List wallet cards
// @Description List every business card in the wallet with balance and stamp progress
// @Tags wallet
// @Produce json
// @Success 200 {array} resdto.WalletCardResponse
// @Router /wallet/cards [get]
func (h *WalletHandler) ListCards(c *gin.Context) {
	cards, err := h.walletQueries.ListCards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromWalletCards(cards))
}

// @Summary Get business detail
// @Description Business card with its reward catalog and affordability per entry
// @Tags wallet
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} resdto.BusinessDetailResponse
// @Failure 404 {object} map[string]string
// @Router /wallet/cards/{id} [get]
func (h *WalletHandler) GetCard(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid business id",
		})
		return
	}

	detail, err := h.walletQueries.GetBusinessDetail(id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Business not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBusinessDetail(detail))
}

// @Summary Activity feed
// @Description Session claims (burn side, newest first) merged with seeded history
// @Tags wallet
// @Produce json
// @Success 200 {array} resdto.ActivityEntryResponse
// @Router /wallet/activity [get]
func (h *WalletHandler) Activity(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromActivityFeed(h.activityQueries.Feed()))
}
