package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"dorm-records-backend/config"
	"dorm-records-backend/internal/mw"
	"dorm-records-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	// Response cache for the audit listings only. The live listings and
	// occupancy views must always reflect current state.
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/auth/register", handler.Register)
		api.POST("/auth/login", handler.Login)

		api.GET("/dormitories", handler.GetDormitories)
		api.POST("/dormitories", handler.PostDormitory)
		api.PUT("/dormitories/:id", handler.PutDormitory)
		api.DELETE("/dormitories/:id", handler.DeleteDormitory)
		api.GET("/dormitories/:id/rooms", handler.GetDormitoryRooms)
		api.GET("/dormitories/:id/rooms/:number/residents", handler.GetRoomResidents)

		api.POST("/rooms", handler.PostRoom)
		api.PUT("/rooms/:id", handler.PutRoom)
		api.DELETE("/rooms/:id", handler.DeleteRoom)

		api.GET("/residents", handler.GetResidents)
		api.POST("/residents", handler.PostResident)
		api.PUT("/residents/:nim", handler.PutResident)
		api.DELETE("/residents/:nim", handler.DeleteResident)
		api.POST("/residents/:nim/move", handler.MoveResident)

		api.GET("/faculties", handler.GetFaculties)

		api.GET("/audit/dormitories", caching, handler.GetDormitoryAuditLogs)
		api.GET("/audit/rooms", caching, handler.GetRoomAuditLogs)
		api.GET("/audit/residents", caching, handler.GetResidentAuditLogs)
	}

	return r
}
