// Package api implements the HTTP resource handlers for the Qik Office
// backend. Each handler validates the inbound request shape, constructs an
// entity with its defaults applied, delegates to the document store and
// serializes the result.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qikoffice-dev/qikoffice-api/internal/store"
)

// Handler carries the document store and logger shared by all endpoints.
type Handler struct {
	Store store.Store
	Log   *zap.SugaredLogger
}

// New builds a Handler. A nil logger is replaced with a no-op logger; a nil
// store is allowed and makes every data endpoint report the store as
// unavailable, mirroring a daemon booted without a reachable backend.
func New(s store.Store, log *zap.SugaredLogger) *Handler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handler{Store: s, Log: log}
}

// ready returns the store, or responds 503 when none is configured.
func (h *Handler) ready(c *gin.Context) (store.Store, bool) {
	if h.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store not available"})
		return nil, false
	}
	return h.Store, true
}

// storeError maps a store failure onto the HTTP boundary. There is no
// retry or partial-success path; the request fails as a whole.
func (h *Handler) storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrBadID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		h.Log.Errorw("store operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Timestamp layouts accepted on the wire, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp parses a date/time string from a request body. Callers
// must treat an error as invalid input, not as a storable value.
func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
