package database

import (
	"log"
	"time"

	"github.com/gatherly/rsvp-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surfaces unique-constraint violations as gorm.ErrDuplicatedKey so
		// the rsvp upsert can report a 409 on a losing race.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	// Status CHECKs, UNIQUE(event_id, attendee_email) and the cascading FK
	// come from the model tags.
	if err := db.AutoMigrate(&models.Event{}, &models.Rsvp{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	return db
}
