package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sereneapp/serene-api/internal/apierror"
	"github.com/sereneapp/serene-api/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetSnapshot handles GET /api/v1/dashboard. It serves the last
// published snapshot without touching the store when one exists.
func (h *DashboardHandler) GetSnapshot(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	snapshot, err := h.dashboardService.Snapshot(c.Request.Context(), userID.(string))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// Refresh handles POST /api/v1/dashboard/refresh, forcing a recompute
// from the raw records.
func (h *DashboardHandler) Refresh(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	snapshot, err := h.dashboardService.Refresh(c.Request.Context(), userID.(string))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
