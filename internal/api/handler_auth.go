package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dorm-records-backend/internal/store"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, store.OpResult{Code: store.CodeUserEmptyInput, Message: "username and password must not be empty"})
		return
	}

	respond(c, h.store.RegisterUser(c.Request.Context(), req.Username, req.Password), http.StatusCreated)
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, store.OpResult{Code: store.CodeUserEmptyInput, Message: "username and password must not be empty"})
		return
	}

	res := h.store.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case res.OK():
		c.JSON(http.StatusOK, res)
	case res.Code == store.CodeDBError:
		c.JSON(http.StatusInternalServerError, res.OpResult)
	default:
		c.JSON(http.StatusUnauthorized, res.OpResult)
	}
}
