package main

import (
	"github.com/habitloop/habitloop/config"
	"github.com/habitloop/habitloop/models"
	"github.com/habitloop/habitloop/routes"
	"github.com/habitloop/habitloop/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.Habit{}, &models.Completion{})

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
