package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qikoffice-dev/qikoffice-api/internal/store"
	"github.com/qikoffice-dev/qikoffice-api/pkg/schema"
)

type createTaskRequest struct {
	MeetingID      string `json:"meeting_id" binding:"required"`
	Title          string `json:"title" binding:"required"`
	AssigneeUserID string `json:"assignee_user_id"`
	DueDate        string `json:"due_date"`
}

// CreateTask creates a to-do raised in a meeting, status "open".
func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task := schema.Task{
		MeetingID:      req.MeetingID,
		Title:          req.Title,
		AssigneeUserID: req.AssigneeUserID,
		Status:         schema.TaskStatusOpen,
	}
	if req.DueDate != "" {
		due, err := parseTimestamp(req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date: " + err.Error()})
			return
		}
		task.DueDate = &due
	}
	st, ok := h.ready(c)
	if !ok {
		return
	}

	id, err := st.Insert(c.Request.Context(), schema.CollectionTask, task)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListTasks returns tasks filtered by whichever of meeting_id and
// assignee_user_id were supplied; with neither, every task is returned.
func (h *Handler) ListTasks(c *gin.Context) {
	st, ok := h.ready(c)
	if !ok {
		return
	}

	filter := store.Filter{}
	if meetingID := c.Query("meeting_id"); meetingID != "" {
		filter["meeting_id"] = meetingID
	}
	if assignee := c.Query("assignee_user_id"); assignee != "" {
		filter["assignee_user_id"] = assignee
	}
	recs, err := st.Find(c.Request.Context(), schema.CollectionTask, filter)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, store.ToWireList(recs))
}

type updateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateTaskStatus replaces the status field of one task, leaving every
// other field untouched. The new status must be one of the recognized
// values.
func (h *Handler) UpdateTaskStatus(c *gin.Context) {
	taskID := c.Param("task_id")

	var req updateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !schema.ValidTaskStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: must be open, in_progress or done"})
		return
	}
	st, ok := h.ready(c)
	if !ok {
		return
	}

	err := st.UpdateField(c.Request.Context(), schema.CollectionTask, taskID, "status", req.Status)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": taskID, "status": req.Status})
}
