package services

import (
	"errors"
	"time"

	"github.com/juanjoserusa/LactaDunaBack/config"
	"github.com/juanjoserusa/LactaDunaBack/models"

	"gorm.io/gorm"
)

// Home-screen aggregate. Field names keep the original payload the
// frontend renders; necesita_baño stays pinned false since baths were
// dropped from the tracker.
type HomeReminders struct {
	LastFeeding          any                  `json:"lactancia_ultima"` // Feeding, or "No hay registros"
	NeedsBath            bool                 `json:"necesita_baño"`
	NeedsVitaminD        bool                 `json:"necesita_vitamina_d"`
	UpcomingAppointments []models.Appointment `json:"citas_proximas"`
}

func GetHomeReminders() (*HomeReminders, error) {
	out := &HomeReminders{UpcomingAppointments: []models.Appointment{}}

	var lastFeeding models.Feeding
	err := config.DB.Order("fecha_hora DESC").First(&lastFeeding).Error
	switch {
	case err == nil:
		out.LastFeeding = lastFeeding
	case errors.Is(err, gorm.ErrRecordNotFound):
		out.LastFeeding = "No hay registros"
	default:
		return nil, err
	}

	// vitamin D is due unless a dose was already logged today
	now := time.Now()
	var lastDose models.VitaminD
	err = config.DB.Order("fecha_hora DESC").First(&lastDose).Error
	switch {
	case err == nil:
		y1, m1, d1 := lastDose.At.Local().Date()
		y2, m2, d2 := now.Date()
		out.NeedsVitaminD = !(y1 == y2 && m1 == m2 && d1 == d2)
	case errors.Is(err, gorm.ErrRecordNotFound):
		out.NeedsVitaminD = true
	default:
		return nil, err
	}

	err = config.DB.
		Where("fecha_hora >= ? AND fecha_hora <= ?", now, now.AddDate(0, 0, 7)).
		Order("fecha_hora ASC").
		Find(&out.UpcomingAppointments).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
