package services

import (
	"errors"
	"time"

	"github.com/juanjoserusa/LactaDunaBack/config"
	"github.com/juanjoserusa/LactaDunaBack/models"
	"github.com/juanjoserusa/LactaDunaBack/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterExposure records that a food was offered on a calendar day.
// The row is keyed by (date, food): a repeat registration on the same
// day only rewrites notes. The returned flag asks the caller for a
// tolerance verdict exactly when this is the 3rd exposure inside the
// trailing 7-day window — not the 4th or later.
func RegisterExposure(date string, foodID uint, notes *string) (*models.Exposure, bool, error) {
	if date == "" || foodID == 0 {
		return nil, false, &utils.ValidationError{Msg: "date and foodId are required"}
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, false, &utils.ValidationError{Msg: "date must be YYYY-MM-DD"}
	}

	var food models.Food
	if err := config.DB.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, &utils.NotFoundError{Msg: "food not found"}
		}
		return nil, false, err
	}

	var exposure models.Exposure
	var needsOutcome bool

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		exposure = models.Exposure{Date: date, FoodID: foodID, Notes: notes}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}, {Name: "food_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"notes"}),
		}).Create(&exposure).Error; err != nil {
			return err
		}

		// Reload: on the conflict branch the in-memory row does not
		// carry the existing id/outcome/tolerated values.
		if err := tx.Where("date = ? AND food_id = ?", date, foodID).
			First(&exposure).Error; err != nil {
			return err
		}

		start, err := WindowStart(date)
		if err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&models.Exposure{}).
			Where("food_id = ? AND date >= ? AND date <= ?", foodID, start, date).
			Count(&count).Error; err != nil {
			return err
		}
		needsOutcome = count == exposuresPerCycle
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &exposure, needsOutcome, nil
}

// ListExposures returns the exposure ledger joined with food fields,
// optionally bounded by an inclusive date range.
func ListExposures(from, to string) ([]models.ExposureWithFood, error) {
	q := config.DB.Table("exposure").
		Select("exposure.*, food.name AS food_name, food.category AS category, food.allergen AS allergen").
		Joins("JOIN food ON food.id = exposure.food_id")
	if from != "" {
		q = q.Where("exposure.date >= ?", from)
	}
	if to != "" {
		q = q.Where("exposure.date <= ?", to)
	}

	var rows []models.ExposureWithFood
	err := q.Order("exposure.date DESC, food.name ASC").Scan(&rows).Error
	return rows, err
}

// SubmitOutcome records the caregiver's verdict after the 3rd exposure.
// Precondition: the food has exactly 3 exposures in the trailing 7-day
// window ending today. The verdict is written onto every in-window row,
// and the derived tolerated flag onto every row for the food across its
// whole history — a later cycle overwrites the previous verdict.
func SubmitOutcome(foodID uint, outcome string) error {
	if foodID == 0 {
		return &utils.ValidationError{Msg: "foodId is required"}
	}
	switch outcome {
	case models.OutcomeOK, models.OutcomeDoubtful, models.OutcomeBad:
	default:
		return &utils.ValidationError{Msg: "outcome must be one of ok, dudoso, malo"}
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		today := Today()
		start, err := WindowStart(today)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Exposure{}).
			Where("food_id = ? AND date >= ? AND date <= ?", foodID, start, today).
			Count(&count).Error; err != nil {
			return err
		}
		if count != exposuresPerCycle {
			return &utils.InvalidStateError{Msg: "food is not exactly at its 3rd exposure"}
		}

		if err := tx.Model(&models.Exposure{}).
			Where("food_id = ? AND date >= ? AND date <= ?", foodID, start, today).
			Update("outcome", outcome).Error; err != nil {
			return err
		}

		return tx.Model(&models.Exposure{}).
			Where("food_id = ?", foodID).
			Update("tolerated", outcome == models.OutcomeOK).Error
	})
}
