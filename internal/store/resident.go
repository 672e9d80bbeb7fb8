package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"dorm-records-backend/internal/model"
	"dorm-records-backend/internal/validate"
)

// ResidentUpdate carries the optional fields of an UpdateResident call.
// A nil field is left untouched. For Faculty, an empty string clears the
// assignment; any other value resolves (or lazily creates) that faculty.
type ResidentUpdate struct {
	NIM     *string
	Name    *string
	Faculty *string
}

// AddResident registers a student into a room, resolved by room number and
// dormitory id, subject to the room's capacity.
func (s *gormStore) AddResident(ctx context.Context, nim, name, facultyName string, roomNumber int, dormitoryID int64, actingUser string) OpResult {
	if !validate.NIM(nim) {
		return OpResult{Code: CodeResidentBadNIM, Message: "nim must be one or more digits"}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return OpResult{Code: CodeResidentUnknown, Message: "resident name must not be empty"}
	}

	var res OpResult
	return s.mutate(ctx, &res, func(tx *gorm.DB) error {
		room, err := findRoom(tx, roomNumber, dormitoryID)
		if err != nil {
			return err
		}
		if room == nil {
			res = OpResult{Code: CodeResidentRoomNotFound, Message: "room not found"}
			return errRule
		}

		occupants, err := countResidents(tx, room.ID)
		if err != nil {
			return err
		}
		if occupants >= int64(room.Capacity) {
			res = OpResult{Code: CodeResidentRoomFull, Message: "room is full"}
			return errRule
		}

		var n int64
		if err := tx.Model(&model.Resident{}).Where("nim = ?", nim).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			res = OpResult{Code: CodeResidentNIMTaken, Message: fmt.Sprintf("nim %s is already registered", nim)}
			return errRule
		}

		facultyID, err := resolveFaculty(tx, facultyName)
		if err != nil {
			return err
		}

		resident := model.Resident{NIM: nim, Name: name, FacultyID: facultyID, RoomID: room.ID}
		if err := tx.Create(&resident).Error; err != nil {
			return err
		}
		if err := logResidentInsert(tx, resident, actingUser); err != nil {
			return err
		}
		res = OpResult{Code: CodeOK, Message: "resident added"}
		return nil
	})
}

// MoveResident reassigns a resident to another room, subject to the target
// room's capacity. Moving into the current room is an informational success.
func (s *gormStore) MoveResident(ctx context.Context, nim string, newRoomNumber int, newDormitoryID int64, actingUser string) OpResult {
	if !validate.NIM(nim) {
		return OpResult{Code: CodeResidentBadNIM, Message: "nim must be one or more digits"}
	}

	var res OpResult
	return s.mutate(ctx, &res, func(tx *gorm.DB) error {
		var resident model.Resident
		if err := tx.Where("nim = ?", nim).First(&resident).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				res = OpResult{Code: CodeResidentNotFound, Message: fmt.Sprintf("resident with nim %s not found", nim)}
				return errRule
			}
			return err
		}

		target, err := findRoom(tx, newRoomNumber, newDormitoryID)
		if err != nil {
			return err
		}
		if target == nil {
			res = OpResult{Code: CodeMoveTargetNotFound, Message: "target room not found"}
			return errRule
		}

		if resident.RoomID == target.ID {
			res = OpResult{Code: CodeOK, Message: MsgResidentAlreadyInRoom}
			return errRule // nothing changed, no mutation and no audit row
		}

		occupants, err := countResidents(tx, target.ID)
		if err != nil {
			return err
		}
		if occupants >= int64(target.Capacity) {
			res = OpResult{Code: CodeMoveTargetFull, Message: "target room is full"}
			return errRule
		}

		old := resident
		resident.RoomID = target.ID
		if err := tx.Model(&model.Resident{}).Where("nim = ?", nim).Update("room_id", target.ID).Error; err != nil {
			return err
		}
		if err := logResidentUpdate(tx, old, resident, actingUser); err != nil {
			return err
		}
		res = OpResult{Code: CodeOK, Message: "resident moved"}
		return nil
	})
}

// UpdateResident applies the supplied field changes to a resident. Values
// identical to the current state are an informational success and produce
// no audit row.
func (s *gormStore) UpdateResident(ctx context.Context, nim string, upd ResidentUpdate, actingUser string) OpResult {
	var res OpResult
	return s.mutate(ctx, &res, func(tx *gorm.DB) error {
		var resident model.Resident
		if err := tx.Where("nim = ?", nim).First(&resident).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				res = OpResult{Code: CodeResidentNotFound, Message: fmt.Sprintf("resident with nim %s not found", nim)}
				return errRule
			}
			return err
		}

		old := resident
		updates := map[string]any{}

		if upd.NIM != nil && *upd.NIM != nim {
			if !validate.NIM(*upd.NIM) {
				res = OpResult{Code: CodeResidentBadNIM, Message: "new nim must be one or more digits"}
				return errRule
			}
			var n int64
			if err := tx.Model(&model.Resident{}).Where("nim = ?", *upd.NIM).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				res = OpResult{Code: CodeResidentNIMConflict, Message: fmt.Sprintf("nim %s is already used by another resident", *upd.NIM)}
				return errRule
			}
			resident.NIM = *upd.NIM
			updates["nim"] = *upd.NIM
		}

		if upd.Name != nil {
			newName := strings.TrimSpace(*upd.Name)
			if newName == "" {
				res = OpResult{Code: CodeResidentEmptyName, Message: "resident name must not be empty"}
				return errRule
			}
			if newName != resident.Name {
				resident.Name = newName
				updates["name"] = newName
			}
		}

		if upd.Faculty != nil {
			facultyID, err := resolveFaculty(tx, *upd.Faculty)
			if err != nil {
				return err
			}
			if !equalID(resident.FacultyID, facultyID) {
				resident.FacultyID = facultyID
				updates["faculty_id"] = facultyID
			}
		}

		if len(updates) == 0 {
			res = OpResult{Code: CodeOK, Message: MsgResidentNoChange}
			return errRule // nothing changed, no mutation and no audit row
		}

		if err := tx.Model(&model.Resident{}).Where("nim = ?", nim).Updates(updates).Error; err != nil {
			return err
		}
		if err := logResidentUpdate(tx, old, resident, actingUser); err != nil {
			return err
		}
		res = OpResult{Code: CodeOK, Message: MsgResidentUpdated}
		return nil
	})
}

// DeleteResident removes a resident by nim.
func (s *gormStore) DeleteResident(ctx context.Context, nim, actingUser string) OpResult {
	var res OpResult
	return s.mutate(ctx, &res, func(tx *gorm.DB) error {
		var resident model.Resident
		if err := tx.Where("nim = ?", nim).First(&resident).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				res = OpResult{Code: CodeResidentNotFound, Message: fmt.Sprintf("resident with nim %s not found", nim)}
				return errRule
			}
			return err
		}

		if err := logResidentDelete(tx, resident, actingUser); err != nil {
			return err
		}
		if err := tx.Where("nim = ?", nim).Delete(&model.Resident{}).Error; err != nil {
			return err
		}
		res = OpResult{Code: CodeOK, Message: "resident deleted"}
		return nil
	})
}
