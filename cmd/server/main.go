package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"microbot/internal/api/router"
	"microbot/internal/cache"
	"microbot/internal/config"
	"microbot/internal/core/repository"
	"microbot/internal/core/service"
	"microbot/internal/messaging"
	"microbot/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Logger.Fatalf("Failed to load config: %v", err)
	}
	utils.SetupLogger(cfg.LogLevel)

	// Repositories: MongoDB in production, in-memory in test mode
	var robotRepo repository.RobotRepository
	var telemetryRepo repository.TelemetryRepository
	if cfg.TestMode {
		utils.Logger.Info("TEST_MODE enabled, using in-memory repositories")
		robotRepo = repository.NewInMemoryRobotRepository()
		telemetryRepo = repository.NewInMemoryTelemetryRepository()
	} else {
		db, err := config.ConnectMongoDB(cfg)
		if err != nil {
			utils.Logger.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		robotRepo = repository.NewMongoRobotRepository(db)
		telemetryRepo = repository.NewMongoTelemetryRepository(db)
	}

	// Optional latest-telemetry cache
	cache.Initialize(cfg.RedisURL)
	defer cache.Close()

	// Optional MQTT reporting collaborator
	publisher := messaging.NopPublisher()
	if cfg.MQTTBroker != "" {
		mqttPublisher, err := messaging.NewMQTTPublisher(messaging.MQTTConfig{
			Broker:      cfg.MQTTBroker,
			ClientID:    cfg.MQTTClientID,
			Username:    cfg.MQTTUsername,
			Password:    cfg.MQTTPassword,
			TopicPrefix: cfg.TelemetryTopicPrefix,
		})
		if err != nil {
			utils.Logger.Fatalf("Failed to connect MQTT publisher: %v", err)
		}
		publisher = mqttPublisher
	}
	defer publisher.Close()

	// Optional wall-clock pacing between waypoints
	pacer := service.NopPacer()
	if cfg.WaypointPace > 0 {
		utils.Logger.Infof("Waypoint pacing enabled: %s", cfg.WaypointPace)
		pacer = service.DelayPacer(cfg.WaypointPace)
	}

	// Services
	robotService := service.NewRobotService(robotRepo)
	telemetryService := service.NewTelemetryService(telemetryRepo, publisher)
	missionService := service.NewMissionService(robotService, telemetryService, pacer)

	r := router.NewRouter(robotService, missionService, telemetryService)

	server := &http.Server{Addr: cfg.ServerAddr, Handler: r}
	go func() {
		utils.Logger.Infof("Server starting on %s", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatalf("Server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	utils.Logger.Info("Shutting down")
	server.Close()
}
