package models

import "time"

type Recipe struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	SuitableFrom int       `gorm:"not null" json:"suitable_from"` // recommended month (6..12)
	Steps        string    `gorm:"not null" json:"steps"`
	FreezeOK     bool      `gorm:"column:freeze_ok;not null;default:true" json:"freeze_ok"`
	Foods        []Food    `gorm:"many2many:recipe_food;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Recipe) TableName() string { return "recipe" }
