package controllers

import (
	"net/http"

	"github.com/juanjoserusa/LactaDunaBack/services"

	"github.com/gin-gonic/gin"
)

// GET /recordatorios
func GetReminders(c *gin.Context) {
	out, err := services.GetHomeReminders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
