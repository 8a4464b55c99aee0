package controllers

import (
	"net/http"
	"time"

	"github.com/juanjoserusa/LactaDunaBack/services"

	"github.com/gin-gonic/gin"
)

type appointmentRequest struct {
	At          time.Time `json:"fecha_hora"`
	Description string    `json:"descripcion"`
}

// GET /citas_bebe
func GetAppointments(c *gin.Context) {
	rows, err := services.ListAppointments()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /citas_bebe
func CreateAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row, err := services.CreateAppointment(req.At, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// PUT /citas_bebe/:id
func UpdateAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row, err := services.UpdateAppointment(id, req.At, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// DELETE /citas_bebe/:id
func DeleteAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteAppointment(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}
