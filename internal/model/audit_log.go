package model

import "time"

// Audit actions.
const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// DormitoryAuditLog is one append-only row per mutation of a dormitory.
type DormitoryAuditLog struct {
	LogID       int64     `gorm:"primaryKey" json:"logId"`
	DormitoryID int64     `gorm:"not null" json:"dormitoryId"`
	OldName     *string   `gorm:"size:255" json:"oldName"`
	NewName     *string   `gorm:"size:255" json:"newName"`
	Action      string    `gorm:"size:10;not null" json:"action"`
	ActedAt     time.Time `gorm:"not null;index" json:"actedAt"`
	ActingUser  string    `gorm:"size:50" json:"actingUser"`
	Description string    `json:"description"`
}

// RoomAuditLog is one append-only row per mutation of a room. Dormitory
// names are denormalized so the log stays readable after a rename.
type RoomAuditLog struct {
	LogID            int64     `gorm:"primaryKey" json:"logId"`
	RoomID           int64     `gorm:"not null" json:"roomId"`
	OldNumber        *int      `json:"oldNumber"`
	NewNumber        *int      `json:"newNumber"`
	OldDormitoryID   *int64    `json:"oldDormitoryId"`
	NewDormitoryID   *int64    `json:"newDormitoryId"`
	OldDormitoryName *string   `gorm:"size:255" json:"oldDormitoryName"`
	NewDormitoryName *string   `gorm:"size:255" json:"newDormitoryName"`
	OldCapacity      *int      `json:"oldCapacity"`
	NewCapacity      *int      `json:"newCapacity"`
	Action           string    `gorm:"size:10;not null" json:"action"`
	ActedAt          time.Time `gorm:"not null;index" json:"actedAt"`
	ActingUser       string    `gorm:"size:50" json:"actingUser"`
	Description      string    `json:"description"`
}

// ResidentAuditLog is one append-only row per mutation of a resident.
// Room numbers, dormitory names and faculty names are denormalized at
// write time.
type ResidentAuditLog struct {
	LogID            int64     `gorm:"primaryKey" json:"logId"`
	NIM              string    `gorm:"size:50;not null" json:"nim"`
	OldName          *string   `gorm:"size:255" json:"oldName"`
	NewName          *string   `gorm:"size:255" json:"newName"`
	OldFaculty       *string   `gorm:"size:255" json:"oldFaculty"`
	NewFaculty       *string   `gorm:"size:255" json:"newFaculty"`
	OldRoomID        *int64    `json:"oldRoomId"`
	NewRoomID        *int64    `json:"newRoomId"`
	OldRoomNumber    *int      `json:"oldRoomNumber"`
	NewRoomNumber    *int      `json:"newRoomNumber"`
	OldDormitoryName *string   `gorm:"size:255" json:"oldDormitoryName"`
	NewDormitoryName *string   `gorm:"size:255" json:"newDormitoryName"`
	Action           string    `gorm:"size:10;not null" json:"action"`
	ActedAt          time.Time `gorm:"not null;index" json:"actedAt"`
	ActingUser       string    `gorm:"size:50" json:"actingUser"`
	Description      string    `json:"description"`
}
