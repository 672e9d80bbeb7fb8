package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type addRoomRequest struct {
	Number      int   `json:"number" binding:"required"`
	DormitoryID int64 `json:"dormitoryId" binding:"required"`
	Capacity    int   `json:"capacity" binding:"required"`
}

type updateRoomRequest struct {
	Number      int   `json:"number" binding:"required"`
	Capacity    int   `json:"capacity" binding:"required"`
	DormitoryID int64 `json:"dormitoryId" binding:"required"`
}

// GetDormitoryRooms handles GET /api/dormitories/:id/rooms.
func (h *Handler) GetDormitoryRooms(c *gin.Context) {
	dormitoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dormitory id"})
		return
	}

	rooms, err := h.store.RoomsInDormitory(c.Request.Context(), dormitoryID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomResidents handles GET /api/dormitories/:id/rooms/:number/residents.
func (h *Handler) GetRoomResidents(c *gin.Context) {
	dormitoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dormitory id"})
		return
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room number"})
		return
	}

	residents, err := h.store.ResidentsInRoom(c.Request.Context(), number, dormitoryID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve residents"})
		return
	}
	c.JSON(http.StatusOK, residents)
}

// PostRoom handles POST /api/rooms.
func (h *Handler) PostRoom(c *gin.Context) {
	var req addRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	respond(c, h.store.AddRoom(c.Request.Context(), req.Number, req.DormitoryID, req.Capacity, actingUser(c)), http.StatusCreated)
}

// PutRoom handles PUT /api/rooms/:id.
func (h *Handler) PutRoom(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}
	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	respond(c, h.store.UpdateRoom(c.Request.Context(), roomID, req.Number, req.Capacity, req.DormitoryID, actingUser(c)), http.StatusOK)
}

// DeleteRoom handles DELETE /api/rooms/:id.
func (h *Handler) DeleteRoom(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	respond(c, h.store.DeleteRoom(c.Request.Context(), roomID, actingUser(c)), http.StatusOK)
}
