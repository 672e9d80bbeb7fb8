package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dorm-records-backend/internal/model"
)

// AddRoom inserts a room into a dormitory. Room numbers are unique per
// dormitory and capacity must be positive.
func (s *gormStore) AddRoom(ctx context.Context, number int, dormitoryID int64, capacity int, actingUser string) OpResult {
	if number <= 0 || dormitoryID == 0 || capacity <= 0 {
		return OpResult{Code: CodeRoomInvalidInput, Message: "room number, dormitory id and a positive capacity are required"}
	}

	var res OpResult
	return s.mutate(ctx, &res, func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Dormitory{}).Where("id = ?", dormitoryID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			res = OpResult{Code: CodeRoomDormitoryNotFound, Message: fmt.Sprintf("dormitory with id %d not found", dormitoryID)}
			return errRule
		}

		existing, err := findRoom(tx, number, dormitoryID)
		if err != nil {
			return err
		}
		if existing != nil {
			res = OpResult{Code: CodeRoomNumberTaken, Message: fmt.Sprintf("room number %d already exists in this dormitory", number)}
			return errRule
		}

		room := model.Room{Number: number, DormitoryID: dormitoryID, Capacity: capacity}
		if err := tx.Create(&room).Error; err != nil {
			return err
		}
		if err := logRoomInsert(tx, room, actingUser); err != nil {
			return err
		}
		res = OpResult{Code: CodeOK, Message: "room added"}
		return nil
	})
}

// UpdateRoom changes a room's number and capacity within its dormitory
// context. Identical values are an informational success.
func (s *gormStore) UpdateRoom(ctx context.Context, roomID int64, newNumber, newCapacity int, dormitoryID int64, actingUser string) OpResult {
	if roomID == 0 || newNumber <= 0 || newCapacity <= 0 {
		return OpResult{Code: CodeRoomInvalidInput, Message: "room id, new number and a positive new capacity are required"}
	}

	var res OpResult
	return s.mutate(ctx, &res, func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				res = OpResult{Code: CodeRoomNotFound, Message: fmt.Sprintf("room with id %d not found", roomID)}
				return errRule
			}
			return err
		}

		var n int64
		err := tx.Model(&model.Room{}).
			Where("number = ? AND dormitory_id = ? AND id <> ?", newNumber, dormitoryID, roomID).
			Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			res = OpResult{Code: CodeRoomNumberConflict, Message: fmt.Sprintf("room number %d already exists in this dormitory", newNumber)}
			return errRule
		}

		if room.Number == newNumber && room.Capacity == newCapacity {
			res = OpResult{Code: CodeOK, Message: MsgRoomUnchanged}
			return errRule // nothing changed, no mutation and no audit row
		}

		old := room
		room.Number = newNumber
		room.Capacity = newCapacity
		err = tx.Model(&model.Room{}).Where("id = ?", roomID).
			Updates(map[string]any{"number": newNumber, "capacity": newCapacity}).Error
		if err != nil {
			return err
		}
		if err := logRoomUpdate(tx, old, room, actingUser); err != nil {
			return err
		}
		res = OpResult{Code: CodeOK, Message: "room updated"}
		return nil
	})
}

// DeleteRoom removes a room. Blocked while residents still occupy it.
func (s *gormStore) DeleteRoom(ctx context.Context, roomID int64, actingUser string) OpResult {
	if roomID == 0 {
		return OpResult{Code: CodeRoomInvalidInput, Message: "room id must not be empty"}
	}

	var res OpResult
	return s.mutate(ctx, &res, func(tx *gorm.DB) error {
		occupants, err := countResidents(tx, roomID)
		if err != nil {
			return err
		}
		if occupants > 0 {
			res = OpResult{Code: CodeRoomHasResidents, Message: "room still has residents; delete its residents first"}
			return errRule
		}

		var room model.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				res = OpResult{Code: CodeRoomGone, Message: fmt.Sprintf("room with id %d not found", roomID)}
				return errRule
			}
			return err
		}

		if err := logRoomDelete(tx, room, actingUser); err != nil {
			return err
		}
		if err := tx.Delete(&model.Room{}, roomID).Error; err != nil {
			return err
		}
		res = OpResult{Code: CodeOK, Message: "room deleted"}
		return nil
	})
}
