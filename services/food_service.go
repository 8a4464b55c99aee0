package services

import (
	"github.com/juanjoserusa/LactaDunaBack/config"
	"github.com/juanjoserusa/LactaDunaBack/models"
	"github.com/juanjoserusa/LactaDunaBack/utils"

	"gorm.io/gorm/clause"
)

// UpsertFood creates the food when the name is new, otherwise
// overwrites category and allergen on the existing row.
func UpsertFood(name, category string, allergen bool) (*models.Food, error) {
	if name == "" || category == "" {
		return nil, &utils.ValidationError{Msg: "name and category are required"}
	}

	food := models.Food{Name: name, Category: category, Allergen: allergen}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "allergen"}),
	}).Create(&food).Error
	if err != nil {
		return nil, err
	}

	// on the update branch the insert id is not the existing row's id
	if err := config.DB.Where("name = ?", name).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// ListFoods returns the catalog, optionally filtered by category.
// Unfiltered: category then name; filtered: name alone.
func ListFoods(category string) ([]models.Food, error) {
	q := config.DB.Model(&models.Food{})
	if category != "" {
		q = q.Where("category = ?", category).Order("name")
	} else {
		q = q.Order("category, name")
	}

	var foods []models.Food
	err := q.Find(&foods).Error
	return foods, err
}
