package db

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dorm-records-backend/config"
	"dorm-records-backend/internal/model"
	"dorm-records-backend/internal/store"
)

var testDBSeq atomic.Int64

func testConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:dbtest%d?mode=memory&cache=shared", testDBSeq.Add(1)),
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	}
}

func TestInitSeedsOnce(t *testing.T) {
	cfg := testConfig()

	first, err := Init(cfg)
	require.NoError(t, err)
	sqlDB, err := first.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	// Re-initializing against the same database must not duplicate rows.
	db, err := Init(cfg)
	require.NoError(t, err)

	counts := map[any]int64{
		&model.Dormitory{}: 8,
		&model.Faculty{}:   10,
		&model.Room{}:      72,
		&model.AppUser{}:   1,
	}
	for m, want := range counts {
		var n int64
		require.NoError(t, db.Model(m).Count(&n).Error)
		assert.Equal(t, want, n, "%T", m)
	}

	var room model.Room
	require.NoError(t, db.Where("number = ? AND dormitory_id = ?", 301, 8).First(&room).Error)
	assert.Equal(t, 2, room.Capacity)
}

func TestInitRejectsUnknownDriver(t *testing.T) {
	_, err := Init(&config.DatabaseConfig{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func TestSeededAdminCanLogIn(t *testing.T) {
	db, err := Init(testConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	s := store.NewGormStore(db)
	res := s.Login(context.Background(), DefaultAdminUsername, DefaultAdminPassword)
	assert.Equal(t, store.CodeOK, res.Code, res.Message)
	assert.Equal(t, DefaultAdminUsername, res.Username)
}
