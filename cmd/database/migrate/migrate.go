package migration

import (
	"RecipeSite/entities"
	"RecipeSite/pkg/seed"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Errorf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}, &entities.Region{}); err != nil {
		log.Errorf("Error migrating lookup database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Errorf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SavedRecipe{}); err != nil {
		log.Errorf("Error migrating saved recipe database: %v", err)
		return err
	}

	for _, name := range seed.DefaultRegions {
		region := entities.Region{Name: name}
		if err := db.Where(entities.Region{Name: name}).FirstOrCreate(&region).Error; err != nil {
			log.Errorf("Error seeding region %q: %v", name, err)
			return err
		}
	}

	log.Info("Database migration complete")
	return nil
}
