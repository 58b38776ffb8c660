package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/hourbill/backend/internal/application/report"
)

// DashboardHandler handles the earnings dashboard endpoint
type DashboardHandler struct {
	BaseHandler
	earningsService *reportapp.EarningsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(earningsService *reportapp.EarningsService) *DashboardHandler {
	return &DashboardHandler{
		earningsService: earningsService,
	}
}

// Dashboard returns the user's earnings aggregates. Users with no
// completed entries get zeroed totals and empty groupings.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	dashboard, err := h.earningsService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, dashboard)
}

// RegisterRoutes registers dashboard routes on the given router group
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
}
