package category

import (
	"github.com/avtanos/provider-map/internal/models"
	"gorm.io/gorm"
)

var defaultCategories = []models.Category{
	{Value: "cargo", Label: "Грузовые машины"},
	{Value: "plumber", Label: "Сантехники"},
	{Value: "tow_truck", Label: "Эвакуаторы"},
	{Value: "electrician", Label: "Электрики"},
	{Value: "other", Label: "Другое"},
}

// SeedDefaultCategories inserts the fixed starter set, skipping values
// that already exist so restarts are idempotent.
func SeedDefaultCategories(db *gorm.DB) error {
	for _, cat := range defaultCategories {
		var existing models.Category
		if err := db.Where("value = ?", cat.Value).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
	}
	return nil
}
