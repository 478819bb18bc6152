package main

import (
	"go.uber.org/zap"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/config"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/database"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/logging"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/models"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/router"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/services"
)

func main() {
	// Console-only logger for the bootstrap phase, before the logging
	// config is known.
	bootLog, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize bootstrap logger: " + err.Error())
	}

	if err := config.Init(".", bootLog); err != nil {
		bootLog.Fatal("Failed to load configuration", zap.Error(err))
	}

	log, err := logging.Init(".", config.Conf.Logging)
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer log.Sync()

	// Initialize Database
	database.Init(log)

	// Load the questionnaire definition at startup
	questionnaire, err := models.LoadQuestionnaire(config.Conf.Server.QuestionnairePath)
	if err != nil {
		log.Fatal("Failed to load questionnaire", zap.Error(err))
	}

	if config.Conf.Reminders.Enabled {
		scheduler := services.NewScheduler(log, services.NewEmailService(log))
		scheduler.Start()
	}

	r := router.Setup(log, questionnaire)

	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
