package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qikoffice-dev/qikoffice-api/internal/auth"
	"github.com/qikoffice-dev/qikoffice-api/pkg/schema"
)

type signupRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company"`
}

// Signup registers a user and issues an opaque API key.
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, ok := h.ready(c)
	if !ok {
		return
	}

	apiKey := auth.NewAPIKey()
	user := schema.User{
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		APIKey:   apiKey,
		IsActive: true,
	}
	id, err := st.Insert(c.Request.Context(), schema.CollectionUser, user)
	if err != nil {
		h.storeError(c, err)
		return
	}
	h.Log.Infow("user signed up", "id", id)
	c.JSON(http.StatusOK, gin.H{"id": id, "api_key": apiKey})
}
