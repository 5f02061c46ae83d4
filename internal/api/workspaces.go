package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qikoffice-dev/qikoffice-api/internal/store"
	"github.com/qikoffice-dev/qikoffice-api/pkg/schema"
)

type createWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	OwnerUserID string `json:"owner_user_id" binding:"required"`
	Description string `json:"description"`
}

// CreateWorkspace creates a workspace with an empty ordered member list.
func (h *Handler) CreateWorkspace(c *gin.Context) {
	var req createWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, ok := h.ready(c)
	if !ok {
		return
	}

	ws := schema.Workspace{
		Name:          req.Name,
		OwnerUserID:   req.OwnerUserID,
		MemberUserIDs: []string{},
		Description:   req.Description,
	}
	id, err := st.Insert(c.Request.Context(), schema.CollectionWorkspace, ws)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListWorkspaces returns workspaces, optionally restricted to one owner.
func (h *Handler) ListWorkspaces(c *gin.Context) {
	st, ok := h.ready(c)
	if !ok {
		return
	}

	filter := store.Filter{}
	if owner := c.Query("owner_user_id"); owner != "" {
		filter["owner_user_id"] = owner
	}
	recs, err := st.Find(c.Request.Context(), schema.CollectionWorkspace, filter)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, store.ToWireList(recs))
}
