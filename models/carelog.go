package models

import "time"

// Care-event logs. Table and JSON names keep the original API the
// frontend already speaks.

// A breast/bottle feeding session
type Feeding struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"column:tipo;not null" json:"tipo"`
	Minutes   *int      `gorm:"column:tiempo" json:"tiempo"`
	AmountML  *int      `gorm:"column:cantidad" json:"cantidad"`
	At        time.Time `gorm:"column:fecha_hora;not null;index" json:"fecha_hora"`
	CreatedAt time.Time `json:"created_at"`
}

func (Feeding) TableName() string { return "lactancia" }

// Daily vitamin D drop
type VitaminD struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	At        time.Time `gorm:"column:fecha_hora;not null;index" json:"fecha_hora"`
	CreatedAt time.Time `json:"created_at"`
}

func (VitaminD) TableName() string { return "vitamina_d" }

// Weight measurement in grams
type Weight struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"column:fecha;not null;index" json:"fecha"` // YYYY-MM-DD
	Grams     float64   `gorm:"column:peso;not null" json:"peso"`
	CreatedAt time.Time `json:"created_at"`
}

func (Weight) TableName() string { return "peso_bebe" }

// Pediatrician / checkup appointment
type Appointment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	At          time.Time `gorm:"column:fecha_hora;not null;index" json:"fecha_hora"`
	Description string    `gorm:"column:descripcion;not null" json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Appointment) TableName() string { return "citas_bebe" }
