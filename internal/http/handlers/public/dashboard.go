package public

import (
	"net/http"

	"github.com/supply-hub/supply-hub/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboard 看板汇总
func (h *Handler) GetDashboard(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	summary, err := h.DashboardService.Summary(actor)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to build dashboard summary", err)
		return
	}

	response.Success(c, summary)
}
