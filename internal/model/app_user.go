package model

import "time"

// AppUser is an application account. Passwords are stored as bcrypt hashes.
type AppUser struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}
