package migration

import (
	"share-a-bite-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		return err
	}
	return db.AutoMigrate(&entities.FoodRequest{})
}
