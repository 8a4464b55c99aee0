package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/juanjoserusa/LactaDunaBack/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses.
// Unclassified errors are logged and surface as a generic 500.
func respondError(c *gin.Context, err error) {
	var validation *utils.ValidationError
	var notFound *utils.NotFoundError
	var invalidState *utils.InvalidStateError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Msg})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Msg})
	case errors.As(err, &invalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidState.Msg})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
