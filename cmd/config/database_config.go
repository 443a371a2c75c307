package config

import (
	"fmt"

	"share-a-bite-backend/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the single process-wide database handle. DATABASE_URL wins;
// otherwise the DSN is assembled from the discrete DB_* settings with the
// logical database name defaulting to "donate".
func ConnectDB() (*gorm.DB, error) {
	dsn := utils.GetConfig("DATABASE_URL")
	if dsn == "" {
		dbName := utils.GetConfig("DB_NAME")
		if dbName == "" {
			dbName = "donate"
		}
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			dbName,
			utils.GetConfig("DB_PORT"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
