package controllers

import (
	"net/http"
	"strconv"

	"github.com/juanjoserusa/LactaDunaBack/services"

	"github.com/gin-gonic/gin"
)

// GET /recipes?suitableTo=8&foodId=3
func GetRecipes(c *gin.Context) {
	suitableTo, _ := strconv.Atoi(c.Query("suitableTo"))
	foodID, _ := strconv.ParseUint(c.Query("foodId"), 10, 64)

	recipes, err := services.ListRecipes(suitableTo, uint(foodID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// POST /recipes  {title, suitable_from, steps, freeze_ok?, foodIds?}
func CreateRecipe(c *gin.Context) {
	var req struct {
		Title        string `json:"title"`
		SuitableFrom int    `json:"suitable_from"`
		Steps        string `json:"steps"`
		FreezeOK     *bool  `json:"freeze_ok"`
		FoodIDs      []uint `json:"foodIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	freezeOK := true
	if req.FreezeOK != nil {
		freezeOK = *req.FreezeOK
	}

	id, err := services.CreateRecipe(req.Title, req.SuitableFrom, req.Steps, freezeOK, req.FoodIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
