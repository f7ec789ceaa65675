package database

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/cdtello/nutri-fit-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a GORM connection to the given Postgres URL.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey, which the services map to Conflict.
func Connect(dbURL string) (*gorm.DB, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Connected to database")
	return db, nil
}

// Migrate migrates the database schema and installs the schedule
// uniqueness guard. At most one active workout day may exist per
// (user, day of week) pair, which AutoMigrate cannot express, so the
// partial unique index is created explicitly. The syntax is valid on
// both Postgres and SQLite, so tests run against the same guard.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.WorkoutDay{},
	)
	if err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_workout_days_user_day_active
		 ON workout_days (user_id, day_of_week) WHERE active`,
	).Error
}
