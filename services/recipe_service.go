package services

import (
	"github.com/juanjoserusa/LactaDunaBack/config"
	"github.com/juanjoserusa/LactaDunaBack/models"
	"github.com/juanjoserusa/LactaDunaBack/utils"

	"gorm.io/gorm"
)

// ListRecipes returns recipes, optionally capped by suitable age in
// months and/or restricted to recipes containing a food.
func ListRecipes(suitableTo int, foodID uint) ([]models.Recipe, error) {
	q := config.DB.Model(&models.Recipe{})
	if suitableTo > 0 {
		q = q.Where("suitable_from <= ?", suitableTo)
	}
	if foodID > 0 {
		q = q.Where("EXISTS (SELECT 1 FROM recipe_food rf WHERE rf.recipe_id = recipe.id AND rf.food_id = ?)", foodID)
	}

	var recipes []models.Recipe
	err := q.Order("suitable_from, title").Find(&recipes).Error
	return recipes, err
}

// CreateRecipe inserts a recipe and links its constituent foods.
func CreateRecipe(title string, suitableFrom int, steps string, freezeOK bool, foodIDs []uint) (uint, error) {
	if title == "" || suitableFrom == 0 || steps == "" {
		return 0, &utils.ValidationError{Msg: "title, suitable_from and steps are required"}
	}

	recipe := models.Recipe{
		Title:        title,
		SuitableFrom: suitableFrom,
		Steps:        steps,
		FreezeOK:     freezeOK,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if len(foodIDs) > 0 {
			if err := tx.Where("id IN ?", foodIDs).Find(&recipe.Foods).Error; err != nil {
				return err
			}
			if len(recipe.Foods) != len(foodIDs) {
				return &utils.NotFoundError{Msg: "food not found"}
			}
		}
		return tx.Create(&recipe).Error
	})
	if err != nil {
		return 0, err
	}
	return recipe.ID, nil
}
