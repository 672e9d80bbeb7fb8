package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dorm-records-backend/internal/store"
)

type addResidentRequest struct {
	NIM         string `json:"nim" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Faculty     string `json:"faculty"`
	RoomNumber  int    `json:"roomNumber" binding:"required"`
	DormitoryID int64  `json:"dormitoryId" binding:"required"`
}

// updateResidentRequest distinguishes omitted fields (nil, left untouched)
// from fields explicitly set, including faculty set to "" to clear it.
type updateResidentRequest struct {
	NIM     *string `json:"nim"`
	Name    *string `json:"name"`
	Faculty *string `json:"faculty"`
}

type moveResidentRequest struct {
	RoomNumber  int   `json:"roomNumber" binding:"required"`
	DormitoryID int64 `json:"dormitoryId" binding:"required"`
}

// GetResidents handles GET /api/residents.
func (h *Handler) GetResidents(c *gin.Context) {
	residents, err := h.store.Residents(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve residents"})
		return
	}
	c.JSON(http.StatusOK, residents)
}

// PostResident handles POST /api/residents.
func (h *Handler) PostResident(c *gin.Context) {
	var req addResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.store.AddResident(c.Request.Context(), req.NIM, req.Name, req.Faculty,
		req.RoomNumber, req.DormitoryID, actingUser(c))
	respond(c, res, http.StatusCreated)
}

// PutResident handles PUT /api/residents/:nim.
func (h *Handler) PutResident(c *gin.Context) {
	var req updateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := store.ResidentUpdate{NIM: req.NIM, Name: req.Name, Faculty: req.Faculty}
	respond(c, h.store.UpdateResident(c.Request.Context(), c.Param("nim"), upd, actingUser(c)), http.StatusOK)
}

// MoveResident handles POST /api/residents/:nim/move.
func (h *Handler) MoveResident(c *gin.Context) {
	var req moveResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.store.MoveResident(c.Request.Context(), c.Param("nim"), req.RoomNumber, req.DormitoryID, actingUser(c))
	respond(c, res, http.StatusOK)
}

// DeleteResident handles DELETE /api/residents/:nim.
func (h *Handler) DeleteResident(c *gin.Context) {
	respond(c, h.store.DeleteResident(c.Request.Context(), c.Param("nim"), actingUser(c)), http.StatusOK)
}

// GetFaculties handles GET /api/faculties.
func (h *Handler) GetFaculties(c *gin.Context) {
	faculties, err := h.store.Faculties(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve faculties"})
		return
	}
	c.JSON(http.StatusOK, faculties)
}
