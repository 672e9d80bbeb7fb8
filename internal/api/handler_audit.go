package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func auditLimitParam(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	return limit
}

// GetDormitoryAuditLogs handles GET /api/audit/dormitories.
func (h *Handler) GetDormitoryAuditLogs(c *gin.Context) {
	logs, err := h.store.DormitoryAuditLogs(c.Request.Context(), auditLimitParam(c))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve audit log"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GetRoomAuditLogs handles GET /api/audit/rooms.
func (h *Handler) GetRoomAuditLogs(c *gin.Context) {
	logs, err := h.store.RoomAuditLogs(c.Request.Context(), auditLimitParam(c))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve audit log"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GetResidentAuditLogs handles GET /api/audit/residents.
func (h *Handler) GetResidentAuditLogs(c *gin.Context) {
	logs, err := h.store.ResidentAuditLogs(c.Request.Context(), auditLimitParam(c))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve audit log"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
