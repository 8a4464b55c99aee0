package controllers

import (
	"net/http"
	"time"

	"github.com/juanjoserusa/LactaDunaBack/services"

	"github.com/gin-gonic/gin"
)

// GET /vitamina_d
func GetVitaminD(c *gin.Context) {
	rows, err := services.ListVitaminD()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /vitamina_d
func CreateVitaminD(c *gin.Context) {
	var req struct {
		At time.Time `json:"fecha_hora"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row, err := services.CreateVitaminD(req.At)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// PUT /vitamina_d/:id
func UpdateVitaminD(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		At time.Time `json:"fecha_hora"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row, err := services.UpdateVitaminD(id, req.At)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// DELETE /vitamina_d/:id
func DeleteVitaminD(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteVitaminD(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vitamin D record deleted"})
}
