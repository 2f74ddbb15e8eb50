package api

import (
	"errors"
	"net/http"

	reqdto "korvo/internal/handler/dto/request"
	resdto "korvo/internal/handler/dto/response"
	"korvo/internal/handler/httperr"
	"korvo/internal/usecase/commands"
	"korvo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminQueries    queries.AdminQueries
	benefitCommands commands.BenefitCommands
}

func NewAdminHandler(adminQueries queries.AdminQueries, benefitCommands commands.BenefitCommands) *AdminHandler {
	return &AdminHandler{
		adminQueries:    adminQueries,
		benefitCommands: benefitCommands,
	}
}

// @Summary List admin rewards
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.AdminRewardResponse
// @Router /admin/rewards [get]
func (h *AdminHandler) ListRewards(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromAdminRewards(h.adminQueries.ListRewards()))
}

// @Summary Create admin reward
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRewardRequest true "Reward"
// @Success 201 {object} resdto.AdminRewardResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/rewards [post]
func (h *AdminHandler) CreateReward(c *gin.Context) {
	var req reqdto.CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.benefitCommands.CreateReward(req.ToParams())
	if err != nil {
		h.handleBenefitError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAdminReward(view))
}

// @Summary Update admin reward
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Reward ID"
// @Param request body reqdto.UpdateRewardRequest true "Reward"
// @Success 200 {object} resdto.AdminRewardResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/rewards/{id} [put]
func (h *AdminHandler) UpdateReward(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.benefitCommands.UpdateReward(id, req.ToParams())
	if err != nil {
		h.handleBenefitError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminReward(view))
}

// @Summary Delete admin reward
// @Tags admin
// @Param id path string true "Reward ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/rewards/{id} [delete]
func (h *AdminHandler) DeleteReward(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.benefitCommands.DeleteReward(id); err != nil {
		h.handleBenefitError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List promotions
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.PromotionResponse
// @Router /admin/promotions [get]
func (h *AdminHandler) ListPromotions(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPromotions(h.adminQueries.ListPromotions()))
}

// @Summary Create promotion
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePromotionRequest true "Promotion"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/promotions [post]
func (h *AdminHandler) CreatePromotion(c *gin.Context) {
	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.benefitCommands.CreatePromotion(params)
	if err != nil {
		h.handleBenefitError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromotion(view))
}

// @Summary Update promotion
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Promotion ID"
// @Param request body reqdto.UpdatePromotionRequest true "Promotion"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/promotions/{id} [put]
func (h *AdminHandler) UpdatePromotion(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.benefitCommands.UpdatePromotion(id, params)
	if err != nil {
		h.handleBenefitError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotion(view))
}

// @Summary Delete promotion
// @Tags admin
// @Param id path string true "Promotion ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/promotions/{id} [delete]
func (h *AdminHandler) DeletePromotion(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.benefitCommands.DeletePromotion(id); err != nil {
		h.handleBenefitError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List customers
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.CustomerResponse
// @Router /admin/customers [get]
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCustomers(h.adminQueries.ListCustomers()))
}

// @Summary Dashboard figures
// @Description Seeded figures layered with live session counters
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard := h.adminQueries.Dashboard()
	c.JSON(http.StatusOK, resdto.FromDashboard(&dashboard))
}

func (h *AdminHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *AdminHandler) handleBenefitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRewardNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reward not found", nil)
	case errors.Is(err, commands.ErrPromotionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Promotion not found", nil)
	case errors.Is(err, commands.ErrBenefitValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
