package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"microbot/internal/command"
	"microbot/internal/core/model"
	"microbot/internal/core/service"
	"microbot/internal/sensor"
)

type MissionHandler struct {
	missionService service.MissionService
}

func NewMissionHandler(missionService service.MissionService) *MissionHandler {
	return &MissionHandler{
		missionService: missionService,
	}
}

type loadCommandRequest struct {
	RobotID string          `json:"robotId"`
	Command json.RawMessage `json:"command"`
}

func (h *MissionHandler) LoadCommand(w http.ResponseWriter, r *http.Request) {
	var req loadCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.RobotID == "" {
		http.Error(w, "Robot ID required", http.StatusBadRequest)
		return
	}

	cmd, err := h.missionService.LoadCommand(req.RobotID, req.Command)
	if err != nil {
		http.Error(w, err.Error(), missionErrorStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"robotId":   req.RobotID,
		"missionId": cmd.MissionID,
		"commandId": cmd.CommandID,
		"waypoints": len(cmd.Plan.Waypoints),
	})
}

type executeMissionRequest struct {
	RobotID string `json:"robotId"`
}

func (h *MissionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req executeMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.RobotID == "" {
		http.Error(w, "Robot ID required", http.StatusBadRequest)
		return
	}

	report, err := h.missionService.Execute(r.Context(), req.RobotID)
	if err != nil {
		http.Error(w, err.Error(), missionErrorStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (h *MissionHandler) Status(w http.ResponseWriter, r *http.Request) {
	robotID := r.URL.Query().Get("robotId")
	if robotID == "" {
		http.Error(w, "Robot ID required", http.StatusBadRequest)
		return
	}

	state, err := h.missionService.Status(robotID)
	if err != nil {
		http.Error(w, err.Error(), missionErrorStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// ReportSensors accepts a machine-authenticated sensor reading and applies it
// to the robot's state.
func (h *MissionHandler) ReportSensors(w http.ResponseWriter, r *http.Request) {
	robotID := r.URL.Query().Get("robotId")
	if robotID == "" {
		http.Error(w, "Robot ID required", http.StatusBadRequest)
		return
	}

	var reading sensor.Reading
	if err := json.NewDecoder(r.Body).Decode(&reading); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pos := reading.Position
	err := h.missionService.ApplySensorReading(robotID, &pos, reading.FuelLevelPercent, reading.BatteryVoltage)
	if err != nil {
		http.Error(w, err.Error(), missionErrorStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "accepted"})
}

func missionErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrRobotNotRegistered):
		return http.StatusNotFound
	case errors.Is(err, model.ErrRobotMismatch),
		errors.Is(err, model.ErrMissionInProgress):
		return http.StatusConflict
	case errors.Is(err, model.ErrNoMissionLoaded),
		errors.Is(err, command.ErrInvalidDocument),
		errors.Is(err, command.ErrMissingRobotID),
		errors.Is(err, command.ErrMissingMissionID),
		errors.Is(err, command.ErrMissingCommandID),
		errors.Is(err, command.ErrEmptyPlan),
		errors.Is(err, command.ErrInvalidCoordinate),
		errors.Is(err, command.ErrInvalidVelocity),
		errors.Is(err, command.ErrInvalidAction),
		errors.Is(err, model.ErrLatitudeOutOfRange),
		errors.Is(err, model.ErrLongitudeOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
