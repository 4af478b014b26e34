package database

import (
	"fmt"
	"strconv"

	"leave_manager/config"
	"leave_manager/model"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the one process-wide connection pool. The handle is injected
// from main into everything that needs it; nothing opens its own client.
func Connect() (*gorm.DB, error) {
	port, err := strconv.ParseUint(config.ConfigOr("DB_PORT", "5432"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database port: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	log.Info("connection opened to database")

	if err := db.AutoMigrate(
		&model.Account{},
		&model.Workspace{},
		&model.Employee{},
		&model.LeavePolicy{},
		&model.LeaveRequest{},
		&model.SalaryDeductionRecord{},
		&model.Holiday{},
		&model.Invoice{},
		&model.Notification{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("database migrated")

	if err := installOverlapConstraint(db); err != nil {
		return nil, err
	}

	SeedData(db)
	return db, nil
}

// installOverlapConstraint closes the check-then-act gap on leave creation:
// two racing submissions with intersecting ranges cannot both commit while
// pending/approved.
func installOverlapConstraint(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return fmt.Errorf("failed to create btree_gist extension: %w", err)
	}
	err := db.Exec(`
		ALTER TABLE leave_requests
		ADD CONSTRAINT leave_requests_no_overlap
		EXCLUDE USING gist (
			employee_id WITH =,
			daterange(start_date, end_date, '[]') WITH &&
		) WHERE (status IN ('pending', 'approved'))
	`).Error
	if err != nil {
		// already installed on a previous boot
		var exists bool
		db.Raw(`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'leave_requests_no_overlap')`).Scan(&exists)
		if !exists {
			return fmt.Errorf("failed to install overlap constraint: %w", err)
		}
	}
	return nil
}

// Shutdown drains the pool on SIGINT/SIGTERM.
func Shutdown(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Errorf("shutdown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
