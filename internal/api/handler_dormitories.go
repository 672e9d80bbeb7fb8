package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type addDormitoryRequest struct {
	ID   int64  `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type renameDormitoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetDormitories handles GET /api/dormitories.
func (h *Handler) GetDormitories(c *gin.Context) {
	dorms, err := h.store.Dormitories(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve dormitories"})
		return
	}
	c.JSON(http.StatusOK, dorms)
}

// PostDormitory handles POST /api/dormitories.
func (h *Handler) PostDormitory(c *gin.Context) {
	var req addDormitoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	respond(c, h.store.AddDormitory(c.Request.Context(), req.ID, req.Name, actingUser(c)), http.StatusCreated)
}

// PutDormitory handles PUT /api/dormitories/:id.
func (h *Handler) PutDormitory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dormitory id"})
		return
	}
	var req renameDormitoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	respond(c, h.store.UpdateDormitory(c.Request.Context(), id, req.Name, actingUser(c)), http.StatusOK)
}

// DeleteDormitory handles DELETE /api/dormitories/:id.
func (h *Handler) DeleteDormitory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dormitory id"})
		return
	}

	respond(c, h.store.DeleteDormitory(c.Request.Context(), id, actingUser(c)), http.StatusOK)
}
