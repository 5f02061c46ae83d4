package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qikoffice-dev/qikoffice-api/internal/store"
	"github.com/qikoffice-dev/qikoffice-api/pkg/schema"
)

type createMeetingRequest struct {
	RoomID             string   `json:"room_id" binding:"required"`
	Title              string   `json:"title" binding:"required"`
	ScheduledAt        string   `json:"scheduled_at" binding:"required"`
	DurationMinutes    *int     `json:"duration_minutes" binding:"omitempty,gte=0"`
	HostUserID         string   `json:"host_user_id" binding:"required"`
	ParticipantUserIDs []string `json:"participant_user_ids"`
}

// CreateMeeting schedules a meeting in a room. The scheduled time arrives
// as text and must parse; an unparsable value stores nothing.
func (h *Handler) CreateMeeting(c *gin.Context) {
	var req createMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scheduledAt, err := parseTimestamp(req.ScheduledAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduled_at: " + err.Error()})
		return
	}
	st, ok := h.ready(c)
	if !ok {
		return
	}

	duration := 60
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	participants := req.ParticipantUserIDs
	if participants == nil {
		participants = []string{}
	}
	mtg := schema.Meeting{
		RoomID:             req.RoomID,
		Title:              req.Title,
		ScheduledAt:        scheduledAt,
		DurationMinutes:    duration,
		HostUserID:         req.HostUserID,
		ParticipantUserIDs: participants,
		Status:             schema.MeetingStatusScheduled,
	}
	id, err := st.Insert(c.Request.Context(), schema.CollectionMeeting, mtg)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListMeetings returns meetings, optionally restricted to one room.
func (h *Handler) ListMeetings(c *gin.Context) {
	st, ok := h.ready(c)
	if !ok {
		return
	}

	filter := store.Filter{}
	if roomID := c.Query("room_id"); roomID != "" {
		filter["room_id"] = roomID
	}
	recs, err := st.Find(c.Request.Context(), schema.CollectionMeeting, filter)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, store.ToWireList(recs))
}
