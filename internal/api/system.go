package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qikoffice-dev/qikoffice-api/pkg/schema"
)

// Root reports the app name and liveness.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"app": "Qik Office API", "status": "ok"})
}

// TestStore probes the backing store connection, for deploy checks and the
// database viewer.
func (h *Handler) TestStore(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"store":             "not configured",
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if h.Store != nil {
		if err := h.Store.Ping(c.Request.Context()); err != nil {
			resp["store"] = "error: " + err.Error()
		} else {
			resp["store"] = "connected"
			resp["connection_status"] = "connected"
			resp["collections"] = schema.Collections
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Schema returns the static collection-name list.
func (h *Handler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": schema.Collections})
}
