package model

import (
	"time"

	"github.com/google/uuid"
)

// TelemetryRecord is an immutable snapshot of robot state captured after one
// executed waypoint. Records are appended in execution order and never mutated.
type TelemetryRecord struct {
	ID                string      `json:"id" bson:"id"`
	RobotID           string      `json:"robotId" bson:"robotId"`
	MissionID         string      `json:"missionId" bson:"missionId"`
	Seq               int         `json:"seq" bson:"seq"`
	Timestamp         time.Time   `json:"timestamp" bson:"timestamp"`
	Position          GeoPosition `json:"position" bson:"position"`
	VelocityMS        float64     `json:"velocityMS" bson:"velocityMS"`
	FuelLevelPercent  float64     `json:"fuelLevelPercent" bson:"fuelLevelPercent"`
	BatteryVoltage    float64     `json:"batteryVoltageV" bson:"batteryVoltageV"`
	HopperFillPercent float64     `json:"hopperFillPercent" bson:"hopperFillPercent"`
	HarvestRateKgMin  float64     `json:"harvestRateKgMin" bson:"harvestRateKgMin"`
	Status            RobotStatus `json:"status" bson:"status"`
}

// NewTelemetryRecord snapshots the given state. seq is the zero-based waypoint
// index within the mission.
func NewTelemetryRecord(state *RobotState, missionID string, seq int, velocityMS float64) TelemetryRecord {
	rec := TelemetryRecord{
		ID:                uuid.NewString(),
		RobotID:           state.RobotID,
		MissionID:         missionID,
		Seq:               seq,
		Timestamp:         time.Now(),
		VelocityMS:        velocityMS,
		FuelLevelPercent:  state.FuelLevelPercent,
		BatteryVoltage:    state.BatteryVoltage,
		HopperFillPercent: state.HopperFillPercent,
		HarvestRateKgMin:  state.HarvestRateKgMin,
		Status:            state.Status,
	}
	if state.CurrentPosition != nil {
		rec.Position = *state.CurrentPosition
	}
	return rec
}

// TelemetrySummary is the final-status document produced once per mission run.
type TelemetrySummary struct {
	RobotID             string      `json:"robotId" bson:"robotId"`
	MissionID           string      `json:"missionId" bson:"missionId"`
	CommandID           string      `json:"commandId" bson:"commandId"`
	FinalStatus         RobotStatus `json:"finalStatus" bson:"finalStatus"`
	FuelLevelPercent    float64     `json:"fuelLevelPercent" bson:"fuelLevelPercent"`
	BatteryVoltage      float64     `json:"batteryVoltageV" bson:"batteryVoltageV"`
	HopperFillPercent   float64     `json:"hopperFillPercent" bson:"hopperFillPercent"`
	TotalDistanceMeters float64     `json:"totalDistanceMeters" bson:"totalDistanceMeters"`
	RecordCount         int         `json:"recordCount" bson:"recordCount"`
	CompletedAt         time.Time   `json:"completedAt" bson:"completedAt"`
}

// WaypointResult is the per-waypoint progress report returned to the caller
// during mission execution. It is not persisted as part of robot state.
type WaypointResult struct {
	WaypointID           string         `json:"waypointId"`
	DistanceMeters       float64        `json:"distanceMeters"`
	BearingDeg           float64        `json:"bearingDeg"`
	VelocityMS           float64        `json:"velocityMS"`
	EstimatedTimeSeconds float64        `json:"estimatedTimeSeconds"`
	Action               WaypointAction `json:"action"`
	ArrivalPosition      GeoPosition    `json:"arrivalPosition"`
}

// SafetyIssue names one violated pre-mission check.
type SafetyIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MissionReport is what a mission run hands back to the orchestration layer:
// either the safety issues that aborted it, or the per-waypoint results and
// final summary of a completed run.
type MissionReport struct {
	Status       RobotStatus      `json:"status"`
	SafetyIssues []SafetyIssue    `json:"safetyIssues,omitempty"`
	Results      []WaypointResult `json:"results,omitempty"`
	Summary      TelemetrySummary `json:"summary"`
}
