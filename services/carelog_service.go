package services

import (
	"errors"
	"time"

	"github.com/juanjoserusa/LactaDunaBack/config"
	"github.com/juanjoserusa/LactaDunaBack/models"
	"github.com/juanjoserusa/LactaDunaBack/utils"

	"gorm.io/gorm"
)

// Plain CRUD over the care-event logs. No business rules beyond
// required fields; the interesting logic lives in the exposure tracker.

/* ---------- feedings ---------- */

func ListFeedings() ([]models.Feeding, error) {
	var rows []models.Feeding
	err := config.DB.Order("fecha_hora DESC").Find(&rows).Error
	return rows, err
}

func CreateFeeding(feedType string, minutes, amountML *int, at time.Time) (*models.Feeding, error) {
	if feedType == "" || at.IsZero() {
		return nil, &utils.ValidationError{Msg: "tipo and fecha_hora are required"}
	}
	row := models.Feeding{Type: feedType, Minutes: minutes, AmountML: amountML, At: at}
	if err := config.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func UpdateFeeding(id uint, feedType string, minutes, amountML *int, at time.Time) (*models.Feeding, error) {
	if feedType == "" || at.IsZero() {
		return nil, &utils.ValidationError{Msg: "tipo and fecha_hora are required"}
	}
	var row models.Feeding
	if err := config.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &utils.NotFoundError{Msg: "feeding record not found"}
		}
		return nil, err
	}
	row.Type = feedType
	row.Minutes = minutes
	row.AmountML = amountML
	row.At = at
	if err := config.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func DeleteFeeding(id uint) error {
	return config.DB.Delete(&models.Feeding{}, id).Error
}

/* ---------- vitamin D ---------- */

func ListVitaminD() ([]models.VitaminD, error) {
	var rows []models.VitaminD
	err := config.DB.Order("fecha_hora DESC").Find(&rows).Error
	return rows, err
}

func CreateVitaminD(at time.Time) (*models.VitaminD, error) {
	if at.IsZero() {
		return nil, &utils.ValidationError{Msg: "fecha_hora is required"}
	}
	row := models.VitaminD{At: at}
	if err := config.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func UpdateVitaminD(id uint, at time.Time) (*models.VitaminD, error) {
	if at.IsZero() {
		return nil, &utils.ValidationError{Msg: "fecha_hora is required"}
	}
	var row models.VitaminD
	if err := config.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &utils.NotFoundError{Msg: "vitamin D record not found"}
		}
		return nil, err
	}
	row.At = at
	if err := config.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func DeleteVitaminD(id uint) error {
	return config.DB.Delete(&models.VitaminD{}, id).Error
}

/* ---------- weight ---------- */

func ListWeights() ([]models.Weight, error) {
	var rows []models.Weight
	err := config.DB.Order("fecha DESC").Find(&rows).Error
	return rows, err
}

func CreateWeight(date string, grams float64) (*models.Weight, error) {
	if date == "" || grams == 0 {
		return nil, &utils.ValidationError{Msg: "fecha and peso are required"}
	}
	row := models.Weight{Date: date, Grams: grams}
	if err := config.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func UpdateWeight(id uint, date string, grams float64) (*models.Weight, error) {
	if date == "" || grams == 0 {
		return nil, &utils.ValidationError{Msg: "fecha and peso are required"}
	}
	var row models.Weight
	if err := config.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &utils.NotFoundError{Msg: "weight record not found"}
		}
		return nil, err
	}
	row.Date = date
	row.Grams = grams
	if err := config.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func DeleteWeight(id uint) error {
	res := config.DB.Delete(&models.Weight{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &utils.NotFoundError{Msg: "weight record not found"}
	}
	return nil
}

/* ---------- appointments ---------- */

func ListAppointments() ([]models.Appointment, error) {
	var rows []models.Appointment
	err := config.DB.Order("fecha_hora DESC").Find(&rows).Error
	return rows, err
}

func CreateAppointment(at time.Time, description string) (*models.Appointment, error) {
	if at.IsZero() || description == "" {
		return nil, &utils.ValidationError{Msg: "fecha_hora and descripcion are required"}
	}
	row := models.Appointment{At: at, Description: description}
	if err := config.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func UpdateAppointment(id uint, at time.Time, description string) (*models.Appointment, error) {
	if at.IsZero() || description == "" {
		return nil, &utils.ValidationError{Msg: "fecha_hora and descripcion are required"}
	}
	var row models.Appointment
	if err := config.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &utils.NotFoundError{Msg: "appointment not found"}
		}
		return nil, err
	}
	row.At = at
	row.Description = description
	if err := config.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func DeleteAppointment(id uint) error {
	res := config.DB.Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &utils.NotFoundError{Msg: "appointment not found"}
	}
	return nil
}
