package model

// Dormitory represents a dormitory building. The ID is assigned by the
// caller, not by the database.
type Dormitory struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`

	// Associations
	Rooms []Room `gorm:"foreignKey:DormitoryID" json:"-"`
}
