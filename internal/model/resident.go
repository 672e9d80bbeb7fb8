package model

// Resident is a student assigned to exactly one room. The NIM (student
// number, digits only) is the primary key.
type Resident struct {
	NIM       string `gorm:"primaryKey;size:50" json:"nim"`
	Name      string `gorm:"size:255;not null" json:"name"`
	FacultyID *int64 `json:"facultyId"`
	RoomID    int64  `gorm:"not null" json:"roomId"`

	// Associations
	Room    Room     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Faculty *Faculty `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
