package models

import "time"

// A food from the BLW introduction catalog
type Food struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Category  string    `gorm:"not null" json:"category"` // "fruta"|"verdura"|"proteina"|"cereal"
	Allergen  bool      `gorm:"not null;default:false" json:"allergen"`
	CreatedAt time.Time `json:"created_at"`
}

func (Food) TableName() string { return "food" }
