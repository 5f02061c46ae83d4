// Package server assembles the gin engine: middleware, CORS and the route
// table for the Qik Office API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qikoffice-dev/qikoffice-api/internal/api"
)

// NewRouter wires the resource handlers into a gin engine.
func NewRouter(h *api.Handler, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if log != nil {
		r.Use(requestLogger(log))
	}
	r.Use(cors())

	r.GET("/", h.Root)
	r.GET("/test", h.TestStore)
	r.GET("/schema", h.Schema)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/signup", h.Signup)

		apiGroup.POST("/workspaces", h.CreateWorkspace)
		apiGroup.GET("/workspaces", h.ListWorkspaces)

		apiGroup.POST("/rooms", h.CreateRoom)
		apiGroup.GET("/rooms", h.ListRooms)

		apiGroup.POST("/meetings", h.CreateMeeting)
		apiGroup.GET("/meetings", h.ListMeetings)

		apiGroup.POST("/notes", h.CreateNote)
		apiGroup.GET("/notes", h.ListNotes)

		apiGroup.POST("/tasks", h.CreateTask)
		apiGroup.GET("/tasks", h.ListTasks)
		apiGroup.PATCH("/tasks/:task_id/status", h.UpdateTaskStatus)

		apiGroup.GET("/dashboard/summary", h.DashboardSummary)
	}

	return r
}

// cors allows any origin; the API is consumed by browser frontends hosted
// elsewhere.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
