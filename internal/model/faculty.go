package model

// Faculty is an academic affiliation optionally attached to a resident.
// Faculties are created lazily the first time a resident references an
// unseen name.
type Faculty struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`
}
