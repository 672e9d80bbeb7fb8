package model

// Room is a unit within a dormitory with a fixed resident capacity.
// Number is the human-facing room number, unique per dormitory; ID is an
// opaque surrogate key.
type Room struct {
	ID          int64 `gorm:"primaryKey" json:"id"`
	Number      int   `gorm:"not null;uniqueIndex:idx_room_number_dormitory" json:"number"`
	DormitoryID int64 `gorm:"not null;uniqueIndex:idx_room_number_dormitory" json:"dormitoryId"`
	Capacity    int   `gorm:"not null;default:2" json:"capacity"`

	// Associations
	Dormitory Dormitory `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Residents []Resident `gorm:"foreignKey:RoomID" json:"-"`
}
