package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dorm-records-backend/config"
	"dorm-records-backend/internal/db"
	"dorm-records-backend/internal/store"
)

var testDBSeq atomic.Int64

// newTestRouter spins up a router over a freshly migrated and seeded
// in-memory database. Rate limits are set high enough to never trip.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Init(&config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", testDBSeq.Add(1)),
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewRouter(store.NewGormStore(gdb), &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 60,
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Acting-User", "tester")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) store.OpResult {
	t.Helper()
	var res store.OpResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": db.DefaultAdminUsername,
		"password": db.DefaultAdminPassword,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res store.LoginResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, store.CodeOK, res.Code)
	assert.Equal(t, db.DefaultAdminUsername, res.Username)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": db.DefaultAdminUsername,
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, store.CodeWrongPassword, decodeResult(t, w).Code)

	// Missing fields never reach the store.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{"username": "staff", "password": "s3cret"})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{"username": "staff", "password": "other"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, store.CodeUsernameTaken, decodeResult(t, w).Code)
}

func TestDormitoryEndpoints(t *testing.T) {
	r := newTestRouter(t)

	// The seed data is served as-is.
	w := doJSON(t, r, http.MethodGet, "/api/dormitories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dorms []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dorms))
	assert.Len(t, dorms, 8)

	w = doJSON(t, r, http.MethodPost, "/api/dormitories", gin.H{"id": 9, "name": "Bromelia"})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/dormitories", gin.H{"id": 9, "name": "Cempaka"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, store.CodeDormitoryIDTaken, decodeResult(t, w).Code)

	w = doJSON(t, r, http.MethodPut, "/api/dormitories/9", gin.H{"name": "Cempaka"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The seeded dormitories have rooms, so the cascade-guard refuses.
	w = doJSON(t, r, http.MethodDelete, "/api/dormitories/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, store.CodeDormitoryHasRooms, decodeResult(t, w).Code)

	w = doJSON(t, r, http.MethodDelete, "/api/dormitories/9", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPut, "/api/dormitories/notanumber", gin.H{"name": "X"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomAndResidentEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/dormitories/1/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []store.RoomDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	require.Len(t, rooms, 9)
	assert.Equal(t, 101, rooms[0].Number)
	assert.Equal(t, int64(0), rooms[0].Occupants)

	w = doJSON(t, r, http.MethodPost, "/api/residents", gin.H{
		"nim": "2110511001", "name": "Dian", "faculty": "Engineering",
		"roomNumber": 101, "dormitoryId": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Occupancy reflects the mutation immediately.
	w = doJSON(t, r, http.MethodGet, "/api/dormitories/1/rooms/101/residents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var residents []store.ResidentDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &residents))
	require.Len(t, residents, 1)
	assert.Equal(t, "Dian", residents[0].Name)

	w = doJSON(t, r, http.MethodPost, "/api/residents/2110511001/move", gin.H{
		"roomNumber": 102, "dormitoryId": 1,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPut, "/api/residents/2110511001", gin.H{"name": "Dian Pertiwi"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, "/api/residents/2110511001", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, "/api/residents/2110511001", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, store.CodeResidentNotFound, decodeResult(t, w).Code)
}

func TestAuditEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/dormitories", gin.H{"id": 9, "name": "Bromelia"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/audit/dormitories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "INSERT", logs[0]["action"])
	assert.Equal(t, "tester", logs[0]["actingUser"])

	// A second read is served from the response cache.
	w = doJSON(t, r, http.MethodGet, "/api/audit/dormitories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var cached []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cached))
	assert.Equal(t, logs, cached)
}
