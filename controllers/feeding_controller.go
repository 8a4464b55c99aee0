package controllers

import (
	"net/http"
	"time"

	"github.com/juanjoserusa/LactaDunaBack/services"

	"github.com/gin-gonic/gin"
)

type feedingRequest struct {
	Type     string    `json:"tipo"`
	Minutes  *int      `json:"tiempo"`
	AmountML *int      `json:"cantidad"`
	At       time.Time `json:"fecha_hora"`
}

// GET /lactancia
func GetFeedings(c *gin.Context) {
	rows, err := services.ListFeedings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /lactancia
func CreateFeeding(c *gin.Context) {
	var req feedingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row, err := services.CreateFeeding(req.Type, req.Minutes, req.AmountML, req.At)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// PUT /lactancia/:id
func UpdateFeeding(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req feedingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row, err := services.UpdateFeeding(id, req.Type, req.Minutes, req.AmountML, req.At)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// DELETE /lactancia/:id
func DeleteFeeding(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteFeeding(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "feeding record deleted"})
}
