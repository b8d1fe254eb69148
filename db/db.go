package db

import (
	"Gin_postgres_redis_lost_found/models"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// TranslateError so unique/FK violations surface as gorm sentinel
	// errors instead of driver-specific ones.
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Claim{}); err != nil {
		return err
	}

	// At most one approved claim per item. This partial index is the final
	// arbiter for concurrent submissions, independent of isolation level.
	if err := db.Exec(fmt.Sprintf(`
	  CREATE UNIQUE INDEX IF NOT EXISTS %s_one_approved_per_item
	  ON %s (item_id)
	  WHERE status = '%s';
	`, models.ClaimTable, models.ClaimTable, models.ClaimApproved)).Error; err != nil {
		return err
	}

	// Claim history reads newest-first per claimer.
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_claimer_claimedat_desc
	  ON %s (claimer_id, claimed_at DESC);
	`, models.ClaimTable, models.ClaimTable)).Error; err != nil {
		return err
	}

	return nil
}
