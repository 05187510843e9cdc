package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerAddr string

	// MongoDB
	MongoURI      string
	MongoDatabase string

	// Redis (optional)
	RedisURL string

	// MQTT (optional)
	MQTTBroker           string
	MQTTClientID         string
	MQTTUsername         string
	MQTTPassword         string
	TelemetryTopicPrefix string

	// Application
	LogLevel     string
	TestMode     bool
	WaypointPace time.Duration
}

func Load() (*Config, error) {
	// .env file is optional
	_ = godotenv.Load()

	return &Config{
		ServerAddr:           getEnv("SERVER_ADDR", ":8000"),
		MongoURI:             getEnv("MONGODB_URI", ""),
		MongoDatabase:        getEnv("MONGODB_DATABASE", "microbot"),
		RedisURL:             getEnv("REDIS_URL", ""),
		MQTTBroker:           getEnv("MQTT_BROKER", ""),
		MQTTClientID:         getEnv("MQTT_CLIENT_ID", "microbot-server"),
		MQTTUsername:         getEnv("MQTT_USERNAME", ""),
		MQTTPassword:         getEnv("MQTT_PASSWORD", ""),
		TelemetryTopicPrefix: getEnv("TELEMETRY_TOPIC_PREFIX", "microbot"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		TestMode:             getBoolEnv("TEST_MODE", false),
		WaypointPace:         time.Duration(getIntEnv("WAYPOINT_PACE_MS", 0)) * time.Millisecond,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
