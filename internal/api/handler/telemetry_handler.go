package handler

import (
	"encoding/json"
	"net/http"

	"microbot/internal/core/service"
)

type TelemetryHandler struct {
	telemetryService service.TelemetryService
}

func NewTelemetryHandler(telemetryService service.TelemetryService) *TelemetryHandler {
	return &TelemetryHandler{
		telemetryService: telemetryService,
	}
}

func (h *TelemetryHandler) GetTelemetry(w http.ResponseWriter, r *http.Request) {
	robotID := r.URL.Query().Get("robotId")
	missionID := r.URL.Query().Get("missionId")
	if robotID == "" && missionID == "" {
		http.Error(w, "Robot ID or mission ID required", http.StatusBadRequest)
		return
	}

	var err error
	var records interface{}
	if missionID != "" {
		records, err = h.telemetryService.GetMissionTelemetry(missionID)
	} else {
		records, err = h.telemetryService.GetRobotTelemetry(robotID)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *TelemetryHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	robotID := r.URL.Query().Get("robotId")
	if robotID == "" {
		http.Error(w, "Robot ID required", http.StatusBadRequest)
		return
	}

	record, err := h.telemetryService.GetLatest(r.Context(), robotID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if record == nil {
		http.Error(w, "No telemetry found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func (h *TelemetryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	missionID := r.URL.Query().Get("missionId")
	if missionID == "" {
		http.Error(w, "Mission ID required", http.StatusBadRequest)
		return
	}

	summary, err := h.telemetryService.GetSummary(missionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if summary == nil {
		http.Error(w, "No summary found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
