package handler

import (
	"encoding/json"
	"net/http"

	"microbot/internal/core/service"
)

type RobotHandler struct {
	robotService service.RobotService
}

func NewRobotHandler(robotService service.RobotService) *RobotHandler {
	return &RobotHandler{
		robotService: robotService,
	}
}

type registerRobotRequest struct {
	Name string `json:"name"`
}

func (h *RobotHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRobotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	robot, err := h.robotService.RegisterRobot(req.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(robot)
}

func (h *RobotHandler) Deregister(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Robot ID required", http.StatusBadRequest)
		return
	}

	if err := h.robotService.DeregisterRobot(id); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "deregistered"})
}

func (h *RobotHandler) GetRobots(w http.ResponseWriter, r *http.Request) {
	robots, err := h.robotService.GetAllRobots()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(robots)
}

func (h *RobotHandler) GetRobot(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Robot ID required", http.StatusBadRequest)
		return
	}

	robot, err := h.robotService.GetRobot(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if robot == nil {
		http.Error(w, "Robot not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(robot)
}
