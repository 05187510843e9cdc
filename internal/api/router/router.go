package router

import (
	"encoding/json"
	"net/http"

	"microbot/internal/api/handler"
	"microbot/internal/api/middleware"
	"microbot/internal/core/service"
)

func NewRouter(
	robotService service.RobotService,
	missionService service.MissionService,
	telemetryService service.TelemetryService,
) http.Handler {
	// Initialize handlers
	robotHandler := handler.NewRobotHandler(robotService)
	missionHandler := handler.NewMissionHandler(missionService)
	telemetryHandler := handler.NewTelemetryHandler(telemetryService)
	authMiddleware := middleware.NewAuthMiddleware()
	robotAuthMiddleware := middleware.NewRobotAuthMiddleware(robotService)

	// Create router
	mux := http.NewServeMux()

	// Operator-facing middleware chain
	withMiddleware := func(handler http.Handler) http.Handler {
		return middleware.CORSMiddleware(
			middleware.LoggingMiddleware(
				authMiddleware.Authenticate(handler),
			),
		)
	}

	// Machine-facing middleware chain (API key pair)
	withRobotAuth := func(handler http.Handler) http.Handler {
		return middleware.CORSMiddleware(
			middleware.LoggingMiddleware(
				robotAuthMiddleware.Authenticate(handler),
			),
		)
	}

	// Health check endpoint
	mux.Handle("/health", middleware.CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
		})
	})))

	// Robot registry routes
	mux.Handle("/api/robots", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			robotHandler.Register(w, r)
		case http.MethodDelete:
			robotHandler.Deregister(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	mux.Handle("/api/robots/list", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		robotHandler.GetRobots(w, r)
	})))

	mux.Handle("/api/robots/get", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		robotHandler.GetRobot(w, r)
	})))

	// Mission routes
	mux.Handle("/api/missions/load", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			missionHandler.LoadCommand(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	mux.Handle("/api/missions/execute", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			missionHandler.Execute(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	mux.Handle("/api/missions/status", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		missionHandler.Status(w, r)
	})))

	// Sensor reporting - authenticated by the machine itself
	mux.Handle("/api/sensors/report", withRobotAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			missionHandler.ReportSensors(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	// Telemetry routes
	mux.Handle("/api/telemetry/list", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		telemetryHandler.GetTelemetry(w, r)
	})))

	mux.Handle("/api/telemetry/latest", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		telemetryHandler.GetLatest(w, r)
	})))

	mux.Handle("/api/telemetry/summary", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		telemetryHandler.GetSummary(w, r)
	})))

	return mux
}
