package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"dorm-records-backend/internal/model"
)

// Audit writers. Each is called inside the transaction that performs the
// mutation, so a rolled-back mutation never leaves an audit row and a
// committed one always carries exactly one.

func logDormitoryInsert(tx *gorm.DB, d model.Dormitory, actingUser string) error {
	return tx.Create(&model.DormitoryAuditLog{
		DormitoryID: d.ID,
		NewName:     &d.Name,
		Action:      model.ActionInsert,
		ActedAt:     time.Now().UTC(),
		ActingUser:  actingUser,
		Description: fmt.Sprintf("new dormitory: id %d, name %q", d.ID, d.Name),
	}).Error
}

func logDormitoryUpdate(tx *gorm.DB, old, updated model.Dormitory, actingUser string) error {
	desc := fmt.Sprintf("dormitory %d changed", old.ID)
	if old.Name != updated.Name {
		desc = fmt.Sprintf("dormitory %d renamed from %q to %q", old.ID, old.Name, updated.Name)
	}
	return tx.Create(&model.DormitoryAuditLog{
		DormitoryID: old.ID,
		OldName:     &old.Name,
		NewName:     &updated.Name,
		Action:      model.ActionUpdate,
		ActedAt:     time.Now().UTC(),
		ActingUser:  actingUser,
		Description: desc,
	}).Error
}

func logDormitoryDelete(tx *gorm.DB, d model.Dormitory, actingUser string) error {
	return tx.Create(&model.DormitoryAuditLog{
		DormitoryID: d.ID,
		OldName:     &d.Name,
		Action:      model.ActionDelete,
		ActedAt:     time.Now().UTC(),
		ActingUser:  actingUser,
		Description: fmt.Sprintf("dormitory deleted: id %d, name %q", d.ID, d.Name),
	}).Error
}

// dormitoryName resolves a dormitory's name for denormalized audit rows.
func dormitoryName(tx *gorm.DB, dormitoryID int64) (string, error) {
	var dorm model.Dormitory
	if err := tx.First(&dorm, dormitoryID).Error; err != nil {
		return "", err
	}
	return dorm.Name, nil
}

func logRoomInsert(tx *gorm.DB, r model.Room, actingUser string) error {
	name, err := dormitoryName(tx, r.DormitoryID)
	if err != nil {
		return err
	}
	return tx.Create(&model.RoomAuditLog{
		RoomID:           r.ID,
		NewNumber:        &r.Number,
		NewDormitoryID:   &r.DormitoryID,
		NewDormitoryName: &name,
		NewCapacity:      &r.Capacity,
		Action:           model.ActionInsert,
		ActedAt:          time.Now().UTC(),
		ActingUser:       actingUser,
		Description:      fmt.Sprintf("new room: number %d, dormitory %q, capacity %d", r.Number, name, r.Capacity),
	}).Error
}

func logRoomUpdate(tx *gorm.DB, old, updated model.Room, actingUser string) error {
	oldName, err := dormitoryName(tx, old.DormitoryID)
	if err != nil {
		return err
	}
	newName := oldName
	if updated.DormitoryID != old.DormitoryID {
		if newName, err = dormitoryName(tx, updated.DormitoryID); err != nil {
			return err
		}
	}

	desc := fmt.Sprintf("room %d changed.", old.ID)
	if old.Number != updated.Number {
		desc += fmt.Sprintf(" number: %d -> %d.", old.Number, updated.Number)
	}
	if old.Capacity != updated.Capacity {
		desc += fmt.Sprintf(" capacity: %d -> %d.", old.Capacity, updated.Capacity)
	}
	if old.DormitoryID != updated.DormitoryID {
		desc += fmt.Sprintf(" dormitory: %q -> %q.", oldName, newName)
	}

	return tx.Create(&model.RoomAuditLog{
		RoomID:           old.ID,
		OldNumber:        &old.Number,
		NewNumber:        &updated.Number,
		OldDormitoryID:   &old.DormitoryID,
		NewDormitoryID:   &updated.DormitoryID,
		OldDormitoryName: &oldName,
		NewDormitoryName: &newName,
		OldCapacity:      &old.Capacity,
		NewCapacity:      &updated.Capacity,
		Action:           model.ActionUpdate,
		ActedAt:          time.Now().UTC(),
		ActingUser:       actingUser,
		Description:      desc,
	}).Error
}

func logRoomDelete(tx *gorm.DB, r model.Room, actingUser string) error {
	name, err := dormitoryName(tx, r.DormitoryID)
	if err != nil {
		return err
	}
	return tx.Create(&model.RoomAuditLog{
		RoomID:           r.ID,
		OldNumber:        &r.Number,
		OldDormitoryID:   &r.DormitoryID,
		OldDormitoryName: &name,
		OldCapacity:      &r.Capacity,
		Action:           model.ActionDelete,
		ActedAt:          time.Now().UTC(),
		ActingUser:       actingUser,
		Description:      fmt.Sprintf("room deleted: number %d, dormitory %q", r.Number, name),
	}).Error
}

// residentContext is the denormalized room/dormitory/faculty view of a
// resident at audit time.
type residentContext struct {
	RoomNumber    *int
	DormitoryName *string
	Faculty       *string
}

func residentContextOf(tx *gorm.DB, roomID int64, facultyID *int64) (residentContext, error) {
	var rc residentContext

	var room model.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		return rc, err
	}
	name, err := dormitoryName(tx, room.DormitoryID)
	if err != nil {
		return rc, err
	}
	rc.RoomNumber = &room.Number
	rc.DormitoryName = &name

	if facultyID != nil {
		var faculty model.Faculty
		if err := tx.First(&faculty, *facultyID).Error; err != nil {
			return rc, err
		}
		rc.Faculty = &faculty.Name
	}
	return rc, nil
}

func logResidentInsert(tx *gorm.DB, r model.Resident, actingUser string) error {
	rc, err := residentContextOf(tx, r.RoomID, r.FacultyID)
	if err != nil {
		return err
	}
	return tx.Create(&model.ResidentAuditLog{
		NIM:              r.NIM,
		NewName:          &r.Name,
		NewFaculty:       rc.Faculty,
		NewRoomID:        &r.RoomID,
		NewRoomNumber:    rc.RoomNumber,
		NewDormitoryName: rc.DormitoryName,
		Action:           model.ActionInsert,
		ActedAt:          time.Now().UTC(),
		ActingUser:       actingUser,
		Description: fmt.Sprintf("resident added to room %s dormitory %s",
			fmtInt(rc.RoomNumber), fmtStr(rc.DormitoryName)),
	}).Error
}

func logResidentUpdate(tx *gorm.DB, old, updated model.Resident, actingUser string) error {
	oldCtx, err := residentContextOf(tx, old.RoomID, old.FacultyID)
	if err != nil {
		return err
	}
	newCtx, err := residentContextOf(tx, updated.RoomID, updated.FacultyID)
	if err != nil {
		return err
	}

	// Only the most salient change is described: a room move outranks a
	// faculty change, which outranks a rename. The full before/after
	// columns are stored regardless.
	desc := "resident data changed"
	switch {
	case old.RoomID != updated.RoomID:
		desc = fmt.Sprintf("resident moved from room %s dormitory %s to room %s dormitory %s",
			fmtInt(oldCtx.RoomNumber), fmtStr(oldCtx.DormitoryName),
			fmtInt(newCtx.RoomNumber), fmtStr(newCtx.DormitoryName))
	case !equalID(old.FacultyID, updated.FacultyID):
		desc = fmt.Sprintf("faculty changed from %s to %s", fmtStr(oldCtx.Faculty), fmtStr(newCtx.Faculty))
	case old.Name != updated.Name:
		desc = fmt.Sprintf("name changed from %q to %q", old.Name, updated.Name)
	}

	return tx.Create(&model.ResidentAuditLog{
		NIM:              old.NIM,
		OldName:          &old.Name,
		NewName:          &updated.Name,
		OldFaculty:       oldCtx.Faculty,
		NewFaculty:       newCtx.Faculty,
		OldRoomID:        &old.RoomID,
		NewRoomID:        &updated.RoomID,
		OldRoomNumber:    oldCtx.RoomNumber,
		NewRoomNumber:    newCtx.RoomNumber,
		OldDormitoryName: oldCtx.DormitoryName,
		NewDormitoryName: newCtx.DormitoryName,
		Action:           model.ActionUpdate,
		ActedAt:          time.Now().UTC(),
		ActingUser:       actingUser,
		Description:      desc,
	}).Error
}

func logResidentDelete(tx *gorm.DB, r model.Resident, actingUser string) error {
	rc, err := residentContextOf(tx, r.RoomID, r.FacultyID)
	if err != nil {
		return err
	}
	return tx.Create(&model.ResidentAuditLog{
		NIM:              r.NIM,
		OldName:          &r.Name,
		OldFaculty:       rc.Faculty,
		OldRoomID:        &r.RoomID,
		OldRoomNumber:    rc.RoomNumber,
		OldDormitoryName: rc.DormitoryName,
		Action:           model.ActionDelete,
		ActedAt:          time.Now().UTC(),
		ActingUser:       actingUser,
		Description: fmt.Sprintf("resident removed from room %s dormitory %s",
			fmtInt(rc.RoomNumber), fmtStr(rc.DormitoryName)),
	}).Error
}

func fmtInt(p *int) string {
	if p == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *p)
}

func fmtStr(p *string) string {
	if p == nil {
		return "N/A"
	}
	return *p
}

func equalID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
