package routes

import (
	"net/http"

	"github.com/juanjoserusa/LactaDunaBack/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:    []string{"Content-Type"},
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API funcionando correctamente")
	})

	// BLW food introduction
	r.GET("/foods", controllers.GetFoods)
	r.POST("/foods", controllers.CreateFood)
	r.GET("/exposures", controllers.GetExposures)
	r.POST("/exposures", controllers.CreateExposure)
	r.POST("/exposures/outcome", controllers.SubmitOutcome)
	r.GET("/checks", controllers.GetChecks)
	r.POST("/checks", controllers.UpsertCheck)
	r.GET("/recipes", controllers.GetRecipes)
	r.POST("/recipes", controllers.CreateRecipe)

	// care-event logs (original route names, the app depends on them)
	r.GET("/lactancia", controllers.GetFeedings)
	r.POST("/lactancia", controllers.CreateFeeding)
	r.PUT("/lactancia/:id", controllers.UpdateFeeding)
	r.DELETE("/lactancia/:id", controllers.DeleteFeeding)

	r.GET("/vitamina_d", controllers.GetVitaminD)
	r.POST("/vitamina_d", controllers.CreateVitaminD)
	r.PUT("/vitamina_d/:id", controllers.UpdateVitaminD)
	r.DELETE("/vitamina_d/:id", controllers.DeleteVitaminD)

	r.GET("/peso_bebe", controllers.GetWeights)
	r.POST("/peso_bebe", controllers.CreateWeight)
	r.PUT("/peso_bebe/:id", controllers.UpdateWeight)
	r.DELETE("/peso_bebe/:id", controllers.DeleteWeight)

	r.GET("/citas_bebe", controllers.GetAppointments)
	r.POST("/citas_bebe", controllers.CreateAppointment)
	r.PUT("/citas_bebe/:id", controllers.UpdateAppointment)
	r.DELETE("/citas_bebe/:id", controllers.DeleteAppointment)

	r.GET("/recordatorios", controllers.GetReminders)

	return r
}
