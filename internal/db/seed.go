package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dorm-records-backend/internal/model"
)

// Default administrative account created when no users exist yet.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "adminpassword"
)

var seedDormitories = []model.Dormitory{
	{ID: 1, Name: "Aster"},
	{ID: 2, Name: "Soka"},
	{ID: 3, Name: "Tulip"},
	{ID: 4, Name: "Edelweiss"},
	{ID: 5, Name: "Lily"},
	{ID: 6, Name: "Dahlia"},
	{ID: 7, Name: "Melati"},
	{ID: 8, Name: "Anyelir"},
}

var seedFaculties = []string{
	"Engineering",
	"Economics and Business",
	"Social and Political Sciences",
	"Medicine",
	"Cultural Sciences",
	"Mathematics and Natural Sciences",
	"Computer Science",
	"Sports Science",
	"Vocational Studies",
	"Education",
}

// Seed fills empty master tables: the named dormitories, the faculties, a
// three-floor grid of rooms per dormitory and the default admin account.
// Each block is guarded by a row-count check, so restarts never duplicate
// rows. Failures are logged and skipped; seeding is best effort.
func Seed(db *gorm.DB) {
	var n int64

	if err := db.Model(&model.Dormitory{}).Count(&n).Error; err == nil && n == 0 {
		if err := db.Create(&seedDormitories).Error; err != nil {
			log.Printf("Warning: seeding dormitories failed: %v", err)
		} else {
			log.Printf("Seeded %d dormitories", len(seedDormitories))
		}
	}

	if err := db.Model(&model.Faculty{}).Count(&n).Error; err == nil && n == 0 {
		faculties := make([]model.Faculty, len(seedFaculties))
		for i, name := range seedFaculties {
			faculties[i] = model.Faculty{Name: name}
		}
		if err := db.Create(&faculties).Error; err != nil {
			log.Printf("Warning: seeding faculties failed: %v", err)
		} else {
			log.Printf("Seeded %d faculties", len(faculties))
		}
	}

	if err := db.Model(&model.Room{}).Count(&n).Error; err == nil && n == 0 {
		// Rooms 101-103, 201-203, 301-303 in every dormitory, capacity 2.
		var rooms []model.Room
		for _, dorm := range seedDormitories {
			for floor := 1; floor <= 3; floor++ {
				for seq := 1; seq <= 3; seq++ {
					rooms = append(rooms, model.Room{
						Number:      floor*100 + seq,
						DormitoryID: dorm.ID,
						Capacity:    2,
					})
				}
			}
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Printf("Warning: seeding rooms failed: %v", err)
		} else {
			log.Printf("Seeded %d rooms", len(rooms))
		}
	}

	if err := db.Model(&model.AppUser{}).Count(&n).Error; err == nil && n == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Warning: hashing default admin password failed: %v", err)
			return
		}
		admin := model.AppUser{Username: DefaultAdminUsername, PasswordHash: string(hash)}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("Warning: seeding default admin account failed: %v", err)
		} else {
			log.Printf("Created default admin account %q", DefaultAdminUsername)
		}
	}
}
