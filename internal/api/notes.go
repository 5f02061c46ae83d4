package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qikoffice-dev/qikoffice-api/internal/store"
	"github.com/qikoffice-dev/qikoffice-api/pkg/schema"
)

type createNoteRequest struct {
	MeetingID    string `json:"meeting_id" binding:"required"`
	AuthorUserID string `json:"author_user_id" binding:"required"`
	Content      string `json:"content" binding:"required"`
}

// CreateNote attaches a note to a meeting.
func (h *Handler) CreateNote(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, ok := h.ready(c)
	if !ok {
		return
	}

	note := schema.Note{
		MeetingID:    req.MeetingID,
		AuthorUserID: req.AuthorUserID,
		Content:      req.Content,
	}
	id, err := st.Insert(c.Request.Context(), schema.CollectionNote, note)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListNotes returns the notes of one meeting. The meeting filter is
// required.
func (h *Handler) ListNotes(c *gin.Context) {
	meetingID := c.Query("meeting_id")
	if meetingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meeting_id is required"})
		return
	}
	st, ok := h.ready(c)
	if !ok {
		return
	}

	recs, err := st.Find(c.Request.Context(), schema.CollectionNote, store.Filter{"meeting_id": meetingID})
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, store.ToWireList(recs))
}
