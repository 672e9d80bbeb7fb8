package store

import (
	"context"

	"dorm-records-backend/internal/model"
)

// RoomDetail is a room joined with its dormitory name and a live occupant
// count. It backs the room listings and is never cached: the same counts
// drive the capacity checks.
type RoomDetail struct {
	RoomID        int64  `json:"roomId"`
	Number        int    `json:"number"`
	DormitoryID   int64  `json:"dormitoryId"`
	DormitoryName string `json:"dormitoryName"`
	Capacity      int    `json:"capacity"`
	Occupants     int64  `json:"occupants"`
}

// ResidentDetail is a resident flattened across room and dormitory, with
// the faculty left-joined so unaffiliated residents still appear.
type ResidentDetail struct {
	NIM           string  `json:"nim"`
	Name          string  `json:"name"`
	Faculty       *string `json:"faculty"`
	RoomID        int64   `json:"roomId"`
	RoomNumber    int     `json:"roomNumber"`
	DormitoryID   int64   `json:"dormitoryId"`
	DormitoryName string  `json:"dormitoryName"`
}

func (s *gormStore) RoomsInDormitory(ctx context.Context, dormitoryID int64) ([]RoomDetail, error) {
	rooms := []RoomDetail{}
	err := s.db.WithContext(ctx).
		Model(&model.Room{}).
		Select(`rooms.id AS room_id, rooms.number, rooms.dormitory_id, dormitories.name AS dormitory_name, rooms.capacity,
			(SELECT COUNT(*) FROM residents WHERE residents.room_id = rooms.id) AS occupants`).
		Joins("JOIN dormitories ON dormitories.id = rooms.dormitory_id").
		Where("rooms.dormitory_id = ?", dormitoryID).
		Order("rooms.number").
		Scan(&rooms).Error
	return rooms, err
}

// RoomOccupancy returns the live occupant count and capacity of a room.
func (s *gormStore) RoomOccupancy(ctx context.Context, number int, dormitoryID int64) (int, int, error) {
	var row struct {
		Occupants int
		Capacity  int
	}
	err := s.db.WithContext(ctx).
		Model(&model.Room{}).
		Select(`(SELECT COUNT(*) FROM residents WHERE residents.room_id = rooms.id) AS occupants, rooms.capacity`).
		Where("rooms.number = ? AND rooms.dormitory_id = ?", number, dormitoryID).
		Scan(&row).Error
	return row.Occupants, row.Capacity, err
}

func (s *gormStore) Residents(ctx context.Context) ([]ResidentDetail, error) {
	return s.residentDetails(ctx, "", nil)
}

func (s *gormStore) ResidentsInRoom(ctx context.Context, roomNumber int, dormitoryID int64) ([]ResidentDetail, error) {
	return s.residentDetails(ctx, "rooms.number = ? AND rooms.dormitory_id = ?", []any{roomNumber, dormitoryID})
}

func (s *gormStore) residentDetails(ctx context.Context, cond string, args []any) ([]ResidentDetail, error) {
	residents := []ResidentDetail{}
	q := s.db.WithContext(ctx).
		Model(&model.Resident{}).
		Select(`residents.nim, residents.name, faculties.name AS faculty,
			rooms.id AS room_id, rooms.number AS room_number,
			dormitories.id AS dormitory_id, dormitories.name AS dormitory_name`).
		Joins("JOIN rooms ON rooms.id = residents.room_id").
		Joins("JOIN dormitories ON dormitories.id = rooms.dormitory_id").
		Joins("LEFT JOIN faculties ON faculties.id = residents.faculty_id").
		Order("residents.name")
	if cond != "" {
		q = q.Where(cond, args...)
	}
	err := q.Scan(&residents).Error
	return residents, err
}

func (s *gormStore) DormitoryAuditLogs(ctx context.Context, limit int) ([]model.DormitoryAuditLog, error) {
	logs := []model.DormitoryAuditLog{}
	err := s.db.WithContext(ctx).Order("acted_at DESC, log_id DESC").Limit(auditLimit(limit)).Find(&logs).Error
	return logs, err
}

func (s *gormStore) RoomAuditLogs(ctx context.Context, limit int) ([]model.RoomAuditLog, error) {
	logs := []model.RoomAuditLog{}
	err := s.db.WithContext(ctx).Order("acted_at DESC, log_id DESC").Limit(auditLimit(limit)).Find(&logs).Error
	return logs, err
}

func (s *gormStore) ResidentAuditLogs(ctx context.Context, limit int) ([]model.ResidentAuditLog, error) {
	logs := []model.ResidentAuditLog{}
	err := s.db.WithContext(ctx).Order("acted_at DESC, log_id DESC").Limit(auditLimit(limit)).Find(&logs).Error
	return logs, err
}

func auditLimit(limit int) int {
	if limit <= 0 || limit > 1000 {
		return 100
	}
	return limit
}
