package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"dorm-records-backend/internal/model"
)

// Store defines the domain operations over dormitories, rooms, residents
// and application users. Every mutating operation runs inside a single
// transaction covering its rule checks, the mutation and exactly one audit
// row; on a rule violation or engine error nothing is persisted.
type Store interface {
	// Dormitories
	AddDormitory(ctx context.Context, id int64, name, actingUser string) OpResult
	UpdateDormitory(ctx context.Context, id int64, newName, actingUser string) OpResult
	DeleteDormitory(ctx context.Context, id int64, actingUser string) OpResult
	Dormitories(ctx context.Context) ([]model.Dormitory, error)

	// Rooms
	AddRoom(ctx context.Context, number int, dormitoryID int64, capacity int, actingUser string) OpResult
	UpdateRoom(ctx context.Context, roomID int64, newNumber, newCapacity int, dormitoryID int64, actingUser string) OpResult
	DeleteRoom(ctx context.Context, roomID int64, actingUser string) OpResult
	RoomsInDormitory(ctx context.Context, dormitoryID int64) ([]RoomDetail, error)
	RoomOccupancy(ctx context.Context, number int, dormitoryID int64) (occupants, capacity int, err error)

	// Residents
	AddResident(ctx context.Context, nim, name, facultyName string, roomNumber int, dormitoryID int64, actingUser string) OpResult
	MoveResident(ctx context.Context, nim string, newRoomNumber int, newDormitoryID int64, actingUser string) OpResult
	UpdateResident(ctx context.Context, nim string, upd ResidentUpdate, actingUser string) OpResult
	DeleteResident(ctx context.Context, nim, actingUser string) OpResult
	Residents(ctx context.Context) ([]ResidentDetail, error)
	ResidentsInRoom(ctx context.Context, roomNumber int, dormitoryID int64) ([]ResidentDetail, error)

	// Faculties
	Faculties(ctx context.Context) ([]model.Faculty, error)

	// Users
	RegisterUser(ctx context.Context, username, password string) OpResult
	Login(ctx context.Context, username, password string) LoginResult

	// Audit
	DormitoryAuditLogs(ctx context.Context, limit int) ([]model.DormitoryAuditLog, error)
	RoomAuditLogs(ctx context.Context, limit int) ([]model.RoomAuditLog, error)
	ResidentAuditLogs(ctx context.Context, limit int) ([]model.ResidentAuditLog, error)

	DB() *gorm.DB
}

// errRule aborts a transaction after a business-rule check failed. The
// operation's OpResult has already been filled in by then; the sentinel
// only forces the rollback.
var errRule = errors.New("business rule violation")

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// mutate runs fn inside a transaction and folds engine errors into the
// generic failure result. Rule violations surfaced via errRule keep the
// OpResult fn assigned before returning it.
func (s *gormStore) mutate(ctx context.Context, res *OpResult, fn func(tx *gorm.DB) error) OpResult {
	err := s.db.WithContext(ctx).Transaction(fn)
	if err != nil && !errors.Is(err, errRule) {
		return OpResult{Code: CodeDBError, Message: "database error: " + err.Error()}
	}
	return *res
}

// findRoom resolves a room by its per-dormitory number.
func findRoom(tx *gorm.DB, number int, dormitoryID int64) (*model.Room, error) {
	var room model.Room
	err := tx.Where("number = ? AND dormitory_id = ?", number, dormitoryID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// countResidents returns the live occupant count of a room.
func countResidents(tx *gorm.DB, roomID int64) (int64, error) {
	var n int64
	err := tx.Model(&model.Resident{}).Where("room_id = ?", roomID).Count(&n).Error
	return n, err
}

// resolveFaculty returns the id of the named faculty, creating it on first
// use. An empty name resolves to nil (no affiliation).
func resolveFaculty(tx *gorm.DB, name string) (*int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	var faculty model.Faculty
	err := tx.Where("name = ?", name).First(&faculty).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		faculty = model.Faculty{Name: name}
		err = tx.Create(&faculty).Error
	}
	if err != nil {
		return nil, err
	}
	return &faculty.ID, nil
}

func (s *gormStore) Dormitories(ctx context.Context) ([]model.Dormitory, error) {
	var dorms []model.Dormitory
	err := s.db.WithContext(ctx).Order("name").Find(&dorms).Error
	return dorms, err
}

func (s *gormStore) Faculties(ctx context.Context) ([]model.Faculty, error) {
	var faculties []model.Faculty
	err := s.db.WithContext(ctx).Order("name").Find(&faculties).Error
	return faculties, err
}
