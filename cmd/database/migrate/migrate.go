package migration

import (
	"Crenza-Backend/entities"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Pantry{}, &entities.PantryItem{}); err != nil {
		log.Errorf("Error migrating pantry database: %v", err)
		return fmt.Errorf("migrate pantries: %w", err)
	}
	if err := db.AutoMigrate(&entities.ShoppingEntry{}); err != nil {
		log.Errorf("Error migrating shopping database: %v", err)
		return fmt.Errorf("migrate shopping list: %w", err)
	}
	if err := db.AutoMigrate(&entities.Diet{}, &entities.DietCell{}); err != nil {
		log.Errorf("Error migrating diet database: %v", err)
		return fmt.Errorf("migrate diets: %w", err)
	}
	if err := db.AutoMigrate(&entities.Preference{}); err != nil {
		log.Errorf("Error migrating preference database: %v", err)
		return fmt.Errorf("migrate preferences: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
