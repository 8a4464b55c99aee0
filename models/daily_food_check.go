package models

import "time"

// Per-meal calendar tick: did the baby get this food at this meal today.
type DailyFoodCheck struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"not null;uniqueIndex:idx_check_date_food_meal;index" json:"date"` // YYYY-MM-DD
	FoodID    uint      `gorm:"not null;uniqueIndex:idx_check_date_food_meal" json:"food_id"`
	Food      Food      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Meal      string    `gorm:"not null;uniqueIndex:idx_check_date_food_meal" json:"meal"` // "manana"|"comida"|"merienda"|"cena"
	Checked   bool      `gorm:"not null;default:false" json:"checked"`
	CreatedAt time.Time `json:"created_at"`
}

func (DailyFoodCheck) TableName() string { return "daily_food_check" }

// DailyFoodCheck joined with its food fields, as returned by GET /checks.
type DailyFoodCheckWithFood struct {
	DailyFoodCheck
	FoodName string `json:"food_name"`
	Category string `json:"category"`
	Allergen bool   `json:"allergen"`
}
