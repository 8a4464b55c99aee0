package models

import "time"

// Outcome values recorded after the 3rd exposure in a 7-day window.
const (
	OutcomeOK       = "ok"
	OutcomeDoubtful = "dudoso"
	OutcomeBad      = "malo"
)

// One offering of a food on a calendar day. At most one row per
// (date, food) pair; a repeat on the same day only rewrites notes.
type Exposure struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"not null;uniqueIndex:idx_exposure_date_food" json:"date"` // YYYY-MM-DD, stored as text so it reads back unchanged
	FoodID    uint      `gorm:"not null;uniqueIndex:idx_exposure_date_food;index" json:"food_id"`
	Food      Food      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Notes     *string   `json:"notes"`
	Tolerated *bool     `json:"tolerated"`                  // global per food, derived from the last outcome
	Outcome   *string   `gorm:"type:text" json:"outcome"`   // "ok"|"dudoso"|"malo"
	CreatedAt time.Time `json:"created_at"`
}

func (Exposure) TableName() string { return "exposure" }

// Exposure joined with its food fields, as returned by GET /exposures.
type ExposureWithFood struct {
	Exposure
	FoodName string `json:"food_name"`
	Category string `json:"category"`
	Allergen bool   `json:"allergen"`
}
