package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"roamio/internal/config"
	"roamio/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Place{},
		&db_models.Post{},
		&db_models.Booking{},
	); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
