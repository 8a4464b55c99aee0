package controllers

import (
	"net/http"

	"github.com/juanjoserusa/LactaDunaBack/services"

	"github.com/gin-gonic/gin"
)

type weightRequest struct {
	Date  string  `json:"fecha"`
	Grams float64 `json:"peso"`
}

// GET /peso_bebe
func GetWeights(c *gin.Context) {
	rows, err := services.ListWeights()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /peso_bebe
func CreateWeight(c *gin.Context) {
	var req weightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row, err := services.CreateWeight(req.Date, req.Grams)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// PUT /peso_bebe/:id
func UpdateWeight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req weightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row, err := services.UpdateWeight(id, req.Date, req.Grams)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// DELETE /peso_bebe/:id
func DeleteWeight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteWeight(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "weight record deleted"})
}
