package main

import (
	"log"
	"os"

	"github.com/juanjoserusa/LactaDunaBack/config"
	"github.com/juanjoserusa/LactaDunaBack/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
