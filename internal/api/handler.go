package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dorm-records-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

// actingUser extracts the identity a mutation is attributed to in the
// audit log. The caller supplies it explicitly per request.
func actingUser(c *gin.Context) string {
	if u := c.GetHeader("X-Acting-User"); u != "" {
		return u
	}
	return "unknown"
}

// respond maps an operation result onto an HTTP response. The body always
// carries the domain status code; HTTP status only classifies it.
func respond(c *gin.Context, res store.OpResult, okStatus int) {
	switch {
	case res.OK():
		c.JSON(okStatus, res)
	case res.Code == store.CodeDBError:
		c.JSON(http.StatusInternalServerError, res)
	default:
		c.JSON(http.StatusBadRequest, res)
	}
}
