package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qikoffice-dev/qikoffice-api/internal/dashboard"
)

// DashboardSummary returns room/meeting/task counts and the task completion
// rate for one workspace.
func (h *Handler) DashboardSummary(c *gin.Context) {
	workspaceID := c.Query("workspace_id")
	if workspaceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workspace_id is required"})
		return
	}
	st, ok := h.ready(c)
	if !ok {
		return
	}

	sum, err := dashboard.Compute(c.Request.Context(), st, workspaceID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
