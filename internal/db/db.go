package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dorm-records-backend/config"
	"dorm-records-backend/internal/model"
)

// Init opens the configured database, runs migrations and seeds master
// data. It is safe to call repeatedly: migrations are additive and seeding
// only fills empty tables.
func Init(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	log.Println("Running database migrations...")
	if err := db.AutoMigrate(
		&model.Dormitory{},
		&model.Faculty{},
		&model.Room{},
		&model.Resident{},
		&model.AppUser{},
		&model.DormitoryAuditLog{},
		&model.RoomAuditLog{},
		&model.ResidentAuditLog{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	Seed(db)

	log.Println("Database initialization complete.")
	return db, nil
}
