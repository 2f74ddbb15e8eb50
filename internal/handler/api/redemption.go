package api

import (
	"errors"
	"net/http"

	reqdto "korvo/internal/handler/dto/request"
	resdto "korvo/internal/handler/dto/response"
	"korvo/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RedemptionHandler struct {
	redemptionCommands commands.RedemptionCommands
}

func NewRedemptionHandler(redemptionCommands commands.RedemptionCommands) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionCommands: redemptionCommands,
	}
}

// @Summary Stage a claim
// @Description Validate an offer against the business balance and stage it for confirmation
// @Tags redemption
// @Accept json
// @Produce json
// @Param request body reqdto.StageClaimRequest true "Offer to stage"
// @Success 200 {object} resdto.StagedClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /redemption/stage [post]
func (h *RedemptionHandler) Stage(c *gin.Context) {
	var req reqdto.StageClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	staged, err := h.redemptionCommands.Stage(req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Business not found",
			})
		case errors.Is(err, commands.ErrRewardNotAvailable):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reward not found",
			})
		case errors.Is(err, commands.ErrDiscountNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Discount not found",
			})
		case errors.Is(err, commands.ErrInsufficientPoints):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Insufficient points",
			})
		case errors.Is(err, commands.ErrInvalidOffer):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid offer",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	res := resdto.StagedClaimResponse(*staged)
	c.JSON(http.StatusOK, &res)
}

// @Summary Confirm the staged claim
// @Description Re-validate and debit the balance, append the claim to the ledger
// @Tags redemption
// @Produce json
// @Success 200 {object} resdto.ClaimResultResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /redemption/confirm [post]
func (h *RedemptionHandler) Confirm(c *gin.Context) {
	result, err := h.redemptionCommands.Confirm()
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoStagedClaim):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No staged claim to confirm",
			})
		case errors.Is(err, commands.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Business not found",
			})
		case errors.Is(err, commands.ErrInsufficientPoints):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Insufficient points",
			})
		case errors.Is(err, commands.ErrInvalidOffer):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid offer",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimResult(result))
}

// @Summary Cancel the staged claim
// @Description Discard the staged claim; cancelling with nothing staged is a no-op
// @Tags redemption
// @Success 204
// @Router /redemption/cancel [post]
func (h *RedemptionHandler) Cancel(c *gin.Context) {
	h.redemptionCommands.Cancel()
	c.Status(http.StatusNoContent)
}

// @Summary Current flow state
// @Description The redemption flow state and staged claim, if any
// @Tags redemption
// @Produce json
// @Success 200 {object} resdto.FlowResponse
// @Router /redemption [get]
func (h *RedemptionHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromFlowView(h.redemptionCommands.Current()))
}
