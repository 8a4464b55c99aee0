package controllers

import (
	"net/http"

	"github.com/juanjoserusa/LactaDunaBack/services"

	"github.com/gin-gonic/gin"
)

// GET /checks?month=YYYY-MM
func GetChecks(c *gin.Context) {
	rows, err := services.ListChecks(c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /checks  {date, foodId, meal, checked}
func UpsertCheck(c *gin.Context) {
	var req struct {
		Date    string `json:"date"`
		FoodID  uint   `json:"foodId"`
		Meal    string `json:"meal"`
		Checked bool   `json:"checked"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	check, err := services.UpsertCheck(req.Date, req.FoodID, req.Meal, req.Checked)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}
