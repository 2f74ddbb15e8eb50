package api

import (
	"errors"
	"net/http"

	resdto "korvo/internal/handler/dto/response"
	"korvo/internal/pkg/errs"
	"korvo/internal/usecase/commands"
	"korvo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	claimQueries  queries.ClaimQueries
	claimCommands commands.ClaimCommands
}

func NewClaimHandler(claimQueries queries.ClaimQueries, claimCommands commands.ClaimCommands) *ClaimHandler {
	return &ClaimHandler{
		claimQueries:  claimQueries,
		claimCommands: claimCommands,
	}
}

// @Summary List claimed items
// @Description Session claims, most recent first
// @Tags claims
// @Produce json
// @Success 200 {array} resdto.ClaimResponse
// @Router /claims [get]
func (h *ClaimHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromClaimList(h.claimQueries.List()))
}

// @Summary Delete a claimed item
// @Description Remove a claim from the ledger; deleting an unknown id is a no-op
// @Tags claims
// @Param id path string true "Claim ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /claims/{id} [delete]
func (h *ClaimHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid claim id",
		})
		return
	}
	h.claimCommands.Remove(id)
	c.Status(http.StatusNoContent)
}

// @Summary Get claim proof
// @Description Scannable proof rendering of a claimed item
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID"
// @Success 200 {object} resdto.ProofResponse
// @Failure 404 {object} map[string]string
// @Router /claims/{id}/proof [get]
func (h *ClaimHandler) Proof(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid claim id",
		})
		return
	}

	proof, err := h.claimQueries.GetProof(id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrClaimNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Claim not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromProofView(proof))
}
