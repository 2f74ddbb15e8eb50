package api

import (
	"errors"
	"net/http"
	"strconv"

	"korvo/internal/usecase/commands"
	"korvo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	walletQueries    queries.WalletQueries
	favoriteCommands commands.FavoriteCommands
}

func NewFavoriteHandler(walletQueries queries.WalletQueries, favoriteCommands commands.FavoriteCommands) *FavoriteHandler {
	return &FavoriteHandler{
		walletQueries:    walletQueries,
		favoriteCommands: favoriteCommands,
	}
}

// @Summary List favorite business ids
// @Tags favorites
// @Produce json
// @Success 200 {array} int
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	ids, err := h.walletQueries.ListFavoriteIDs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, ids)
}

// @Summary Toggle a favorite
// @Description Flip the favorite mark on a business and return the new state
// @Tags favorites
// @Produce json
// @Param businessId path int true "Business ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /favorites/{businessId} [put]
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("businessId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid business id",
		})
		return
	}

	favorite, err := h.favoriteCommands.Toggle(id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBusinessNotFound):
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
	c.JSON(http.StatusOK, gin.H{"favorite": favorite})
}
