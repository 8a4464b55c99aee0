package services

import (
	"regexp"
	"time"

	"github.com/juanjoserusa/LactaDunaBack/config"
	"github.com/juanjoserusa/LactaDunaBack/models"
	"github.com/juanjoserusa/LactaDunaBack/utils"

	"gorm.io/gorm/clause"
)

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ListChecks returns one calendar month of meal checks joined with
// food fields. month is YYYY-MM and is required.
func ListChecks(month string) ([]models.DailyFoodCheckWithFood, error) {
	if !monthRe.MatchString(month) {
		return nil, &utils.ValidationError{Msg: "month=YYYY-MM is required"}
	}

	start, err := time.Parse(dateLayout, month+"-01")
	if err != nil {
		return nil, &utils.ValidationError{Msg: "month=YYYY-MM is required"}
	}
	end := start.AddDate(0, 1, 0)

	var rows []models.DailyFoodCheckWithFood
	err = config.DB.Table("daily_food_check").
		Select("daily_food_check.*, food.name AS food_name, food.category AS category, food.allergen AS allergen").
		Joins("JOIN food ON food.id = daily_food_check.food_id").
		Where("daily_food_check.date >= ? AND daily_food_check.date < ?",
			start.Format(dateLayout), end.Format(dateLayout)).
		Order("daily_food_check.date, meal, food_name").
		Scan(&rows).Error
	return rows, err
}

// UpsertCheck ticks or unticks a food for one meal of one day. The row
// is keyed by (date, food, meal); a repeat overwrites checked.
func UpsertCheck(date string, foodID uint, meal string, checked bool) (*models.DailyFoodCheck, error) {
	if date == "" || foodID == 0 || meal == "" {
		return nil, &utils.ValidationError{Msg: "date, foodId and meal are required"}
	}

	check := models.DailyFoodCheck{Date: date, FoodID: foodID, Meal: meal, Checked: checked}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "food_id"}, {Name: "meal"}},
		DoUpdates: clause.AssignmentColumns([]string{"checked"}),
	}).Create(&check).Error
	if err != nil {
		return nil, err
	}

	if err := config.DB.
		Where("date = ? AND food_id = ? AND meal = ?", date, foodID, meal).
		First(&check).Error; err != nil {
		return nil, err
	}
	return &check, nil
}
