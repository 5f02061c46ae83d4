package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qikoffice-dev/qikoffice-api/internal/store"
	"github.com/qikoffice-dev/qikoffice-api/pkg/schema"
)

type createRoomRequest struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"` // online | in-person | hybrid
	Description string `json:"description"`
}

// CreateRoom creates a room inside a workspace. The type defaults to
// "online" and is stored as given otherwise.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, ok := h.ready(c)
	if !ok {
		return
	}

	roomType := req.Type
	if roomType == "" {
		roomType = schema.RoomTypeOnline
	}
	room := schema.Room{
		WorkspaceID: req.WorkspaceID,
		Name:        req.Name,
		Type:        roomType,
		Description: req.Description,
	}
	id, err := st.Insert(c.Request.Context(), schema.CollectionRoom, room)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListRooms returns the rooms of one workspace. The workspace filter is
// required.
func (h *Handler) ListRooms(c *gin.Context) {
	workspaceID := c.Query("workspace_id")
	if workspaceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workspace_id is required"})
		return
	}
	st, ok := h.ready(c)
	if !ok {
		return
	}

	recs, err := st.Find(c.Request.Context(), schema.CollectionRoom, store.Filter{"workspace_id": workspaceID})
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, store.ToWireList(recs))
}
