package main

import (
	"os"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	utils.InitLogger()
	config.InitDB()

	seedDir := os.Getenv("SEED_DIR")
	if seedDir == "" {
		seedDir = "data"
	}
	if err := services.NewSeedService(config.DB).SeedAll(seedDir); err != nil {
		utils.Log.Fatalf("seed reference data: %v", err)
	}

	controllers.Init(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	if err := r.Run(":" + port); err != nil {
		utils.Log.Fatalf("server stopped: %v", err)
	}
}
