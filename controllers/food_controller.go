package controllers

import (
	"net/http"

	"github.com/juanjoserusa/LactaDunaBack/services"

	"github.com/gin-gonic/gin"
)

// GET /foods?category=fruta
func GetFoods(c *gin.Context) {
	foods, err := services.ListFoods(c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// POST /foods  {name, category, allergen?}
func CreateFood(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Allergen bool   `json:"allergen"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	food, err := services.UpsertFood(req.Name, req.Category, req.Allergen)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}
