package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"microbot/internal/core/geo"
	"microbot/internal/core/model"
	"microbot/internal/core/resource"
	"microbot/internal/utils"
)

// Executor drives one robot through its mission: safety gate, then the
// waypoint loop, mutating the robot state and appending telemetry. Each
// executor exclusively owns its RobotState and telemetry log, so a fleet of
// executors runs fully in parallel without shared state.
type Executor struct {
	mu      sync.Mutex
	robotID string
	state   *model.RobotState
	command *model.MissionCommand
	log     []model.TelemetryRecord
	pacer   Pacer
}

func NewExecutor(robotID string) *Executor {
	return &Executor{
		robotID: robotID,
		state:   model.NewRobotState(robotID),
		pacer:   NopPacer(),
	}
}

// SetPacer replaces the between-waypoint pacing hook. Must not be called while
// a mission is executing.
func (e *Executor) SetPacer(p Pacer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pacer = p
}

// LoadCommand stores a mission command for execution. It fails with
// ErrRobotMismatch when the command addresses another robot and with
// ErrMissionInProgress while a mission is executing. On success the current
// position is taken from the plan's start position and the previous mission's
// accumulators are reset; status is left unchanged.
func (e *Executor) LoadCommand(cmd *model.MissionCommand) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cmd.RobotID != e.robotID {
		return fmt.Errorf("%w: command for %s, robot is %s", model.ErrRobotMismatch, cmd.RobotID, e.robotID)
	}
	if e.state.Status == model.StatusNavigating {
		return model.ErrMissionInProgress
	}

	start := cmd.Plan.StartPosition
	e.command = cmd
	e.state.CurrentPosition = &start
	e.state.TotalDistanceMeters = 0
	e.log = nil

	utils.Logger.WithFields(logrus.Fields{
		"robotId":   e.robotID,
		"missionId": cmd.MissionID,
		"commandId": cmd.CommandID,
		"waypoints": len(cmd.Plan.Waypoints),
	}).Info("mission command loaded")

	return nil
}

// ExecuteMission runs the loaded command to completion. Safety violations are
// a soft failure: the mission is reported aborted, no waypoint executes and
// resource state is untouched. Hard errors (no command loaded, missing
// position, malformed waypoint) halt execution without advancing past the last
// completed waypoint.
func (e *Executor) ExecuteMission(ctx context.Context) (*model.MissionReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.command == nil {
		return nil, model.ErrNoMissionLoaded
	}
	cmd := e.command

	if issues := CheckPreconditions(e.state, cmd.SafetyLimits); len(issues) > 0 {
		e.state.Status = model.StatusAborted
		e.command = nil
		utils.Logger.WithField("robotId", e.robotID).Warnf("mission %s aborted: %d safety issue(s)", cmd.MissionID, len(issues))
		return &model.MissionReport{
			Status:       model.StatusAborted,
			SafetyIssues: issues,
			Summary:      e.summaryLocked(cmd),
		}, nil
	}

	if e.state.CurrentPosition == nil {
		return nil, model.ErrMissingPosition
	}

	e.state.Status = model.StatusNavigating
	results := make([]model.WaypointResult, 0, len(cmd.Plan.Waypoints))

	for i, wp := range cmd.Plan.Waypoints {
		// Cancellation is only checked between waypoints, never inside one.
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			if err := e.pacer.Pause(ctx); err != nil {
				return nil, err
			}
		}

		result, err := e.executeWaypoint(wp, i)
		if err != nil {
			return nil, fmt.Errorf("waypoint %s: %w", wp.ID, err)
		}
		results = append(results, result)
	}

	e.state.Status = model.StatusMissionCompleted
	e.command = nil
	summary := e.summaryLocked(cmd)

	utils.Logger.WithFields(logrus.Fields{
		"robotId":        e.robotID,
		"missionId":      cmd.MissionID,
		"distanceMeters": e.state.TotalDistanceMeters,
		"records":        len(e.log),
	}).Info("mission completed")

	return &model.MissionReport{
		Status:  model.StatusMissionCompleted,
		Results: results,
		Summary: summary,
	}, nil
}

// executeWaypoint runs the four-step per-waypoint sequence: geometry, state
// update, resource effect, telemetry append.
func (e *Executor) executeWaypoint(wp model.Waypoint, seq int) (model.WaypointResult, error) {
	target := wp.Position()
	if err := target.Validate(); err != nil {
		return model.WaypointResult{}, err
	}

	from := *e.state.CurrentPosition
	distance := geo.Distance(from, target)
	bearing := from.HeadingDeg
	if !from.SamePoint(target) {
		bearing = geo.Bearing(from, target)
	}

	// Velocity 0 is a valid hold-position waypoint, not a division error.
	estimatedTime := 0.0
	if wp.VelocityMS > 0 {
		estimatedTime = distance / wp.VelocityMS
	}

	arrival := model.GeoPosition{Latitude: target.Latitude, Longitude: target.Longitude, HeadingDeg: bearing}
	e.state.CurrentPosition = &arrival
	e.state.TotalDistanceMeters += distance

	*e.state = resource.ApplyWaypointEffect(*e.state, wp)

	e.log = append(e.log, model.NewTelemetryRecord(e.state, e.command.MissionID, seq, wp.VelocityMS))

	return model.WaypointResult{
		WaypointID:           wp.ID,
		DistanceMeters:       distance,
		BearingDeg:           bearing,
		VelocityMS:           wp.VelocityMS,
		EstimatedTimeSeconds: estimatedTime,
		Action:               wp.Action,
		ArrivalPosition:      arrival,
	}, nil
}

// SetSensorReadings applies externally supplied position and resource readings.
// Rejected while navigating; the waypoint loop is the only writer then.
func (e *Executor) SetSensorReadings(pos *model.GeoPosition, fuelPercent, batteryVoltage float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Status == model.StatusNavigating {
		return model.ErrMissionInProgress
	}
	if pos != nil {
		p := *pos
		e.state.CurrentPosition = &p
	}
	if fuelPercent >= 0 {
		e.state.FuelLevelPercent = fuelPercent
	}
	if batteryVoltage > 0 {
		e.state.BatteryVoltage = batteryVoltage
	}
	return nil
}

// State returns a copy of the robot state.
func (e *Executor) State() model.RobotState {
	e.mu.Lock()
	defer e.mu.Unlock()

	state := *e.state
	if e.state.CurrentPosition != nil {
		pos := *e.state.CurrentPosition
		state.CurrentPosition = &pos
	}
	return state
}

// Telemetry returns a copy of the append-only telemetry log, one record per
// executed waypoint in execution order.
func (e *Executor) Telemetry() []model.TelemetryRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	log := make([]model.TelemetryRecord, len(e.log))
	copy(log, e.log)
	return log
}

func (e *Executor) summaryLocked(cmd *model.MissionCommand) model.TelemetrySummary {
	return model.TelemetrySummary{
		RobotID:             e.robotID,
		MissionID:           cmd.MissionID,
		CommandID:           cmd.CommandID,
		FinalStatus:         e.state.Status,
		FuelLevelPercent:    e.state.FuelLevelPercent,
		BatteryVoltage:      e.state.BatteryVoltage,
		HopperFillPercent:   e.state.HopperFillPercent,
		TotalDistanceMeters: e.state.TotalDistanceMeters,
		RecordCount:         len(e.log),
		CompletedAt:         time.Now(),
	}
}
