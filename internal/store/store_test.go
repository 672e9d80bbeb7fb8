package store

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dorm-records-backend/internal/model"
)

var testDBSeq atomic.Int64

// newTestStore opens a private in-memory SQLite database with the full
// schema migrated.
func newTestStore(t *testing.T) (Store, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(
		&model.Dormitory{},
		&model.Faculty{},
		&model.Room{},
		&model.Resident{},
		&model.AppUser{},
		&model.DormitoryAuditLog{},
		&model.RoomAuditLog{},
		&model.ResidentAuditLog{},
	))

	return NewGormStore(db), db
}

// mustAddDormitory is fixture setup for tests that need a dormitory.
func mustAddDormitory(t *testing.T, s Store, id int64, name string) {
	t.Helper()
	res := s.AddDormitory(context.Background(), id, name, "tester")
	require.Equal(t, CodeOK, res.Code, res.Message)
}

// mustAddRoom is fixture setup for tests that need a room.
func mustAddRoom(t *testing.T, s Store, number int, dormitoryID int64, capacity int) {
	t.Helper()
	res := s.AddRoom(context.Background(), number, dormitoryID, capacity, "tester")
	require.Equal(t, CodeOK, res.Code, res.Message)
}

func auditCount(t *testing.T, db *gorm.DB, logModel any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(logModel).Count(&n).Error)
	return n
}
