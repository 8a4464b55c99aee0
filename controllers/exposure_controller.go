package controllers

import (
	"net/http"

	"github.com/juanjoserusa/LactaDunaBack/models"
	"github.com/juanjoserusa/LactaDunaBack/services"

	"github.com/gin-gonic/gin"
)

// GET /exposures?from=YYYY-MM-DD&to=YYYY-MM-DD
func GetExposures(c *gin.Context) {
	rows, err := services.ListExposures(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /exposures  {date, foodId, notes?}
// On exactly the 3rd exposure inside the trailing week the response
// asks for a tolerance verdict.
func CreateExposure(c *gin.Context) {
	var req struct {
		Date   string  `json:"date"`
		FoodID uint    `json:"foodId"`
		Notes  *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	exposure, needsOutcome, err := services.RegisterExposure(req.Date, req.FoodID, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, struct {
		models.Exposure
		NeedsOutcome bool `json:"needsOutcome"`
	}{*exposure, needsOutcome})
}

// POST /exposures/outcome  {foodId, outcome: "ok"|"dudoso"|"malo"}
func SubmitOutcome(c *gin.Context) {
	var req struct {
		FoodID  uint   `json:"foodId"`
		Outcome string `json:"outcome"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := services.SubmitOutcome(req.FoodID, req.Outcome); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
