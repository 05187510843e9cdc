package middleware

import (
	"context"
	"net/http"

	"microbot/internal/core/service"
)

// RobotAuthMiddleware authenticates a machine reporting its own sensor
// readings, using the API key pair issued at registration.
type RobotAuthMiddleware struct {
	robotService service.RobotService
}

func NewRobotAuthMiddleware(robotService service.RobotService) *RobotAuthMiddleware {
	return &RobotAuthMiddleware{
		robotService: robotService,
	}
}

func (m *RobotAuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get("X-Robot-API-Key")
		apiSecret := r.Header.Get("X-Robot-API-Secret")

		if apiKey == "" || apiSecret == "" {
			http.Error(w, "Robot authentication required", http.StatusUnauthorized)
			return
		}

		robotID := r.URL.Query().Get("robotId")
		if robotID == "" {
			http.Error(w, "Robot ID required", http.StatusBadRequest)
			return
		}

		robot, err := m.robotService.ValidateRobotCredentials(robotID, apiKey, apiSecret)
		if err != nil {
			http.Error(w, "Invalid robot credentials", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), "robot", robot)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
