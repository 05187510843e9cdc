package service

import (
	"context"
	"errors"
	"sync"

	"microbot/internal/command"
	"microbot/internal/core/model"
	"microbot/internal/utils"
)

var ErrRobotNotRegistered = errors.New("robot not registered")

// MissionService is the fleet-facing front of the mission engine: it keeps one
// executor per registered robot and runs the load/execute/status operations
// against it, persisting telemetry through the telemetry service.
type MissionService interface {
	LoadCommand(robotID string, document []byte) (*model.MissionCommand, error)
	Execute(ctx context.Context, robotID string) (*model.MissionReport, error)
	Status(robotID string) (*model.RobotState, error)
	Telemetry(robotID string) ([]model.TelemetryRecord, error)
	ApplySensorReading(robotID string, pos *model.GeoPosition, fuelPercent, batteryVoltage float64) error
}

type missionService struct {
	robotService RobotService
	telemetry    TelemetryService
	pacer        Pacer

	mu        sync.Mutex
	executors map[string]*Executor
}

// NewMissionService builds the fleet front. The pacer is applied to every
// executor the service creates: NopPacer for servers and tests, DelayPacer
// for paced live runs.
func NewMissionService(robotService RobotService, telemetry TelemetryService, pacer Pacer) MissionService {
	if pacer == nil {
		pacer = NopPacer()
	}
	return &missionService{
		robotService: robotService,
		telemetry:    telemetry,
		pacer:        pacer,
		executors:    make(map[string]*Executor),
	}
}

// executorFor returns the robot's executor, creating it on first use. Each
// robot gets exactly one executor for the life of the process.
func (s *missionService) executorFor(robotID string) (*Executor, error) {
	robot, err := s.robotService.GetRobot(robotID)
	if err != nil {
		return nil, err
	}
	if robot == nil {
		return nil, ErrRobotNotRegistered
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	exec, ok := s.executors[robotID]
	if !ok {
		exec = NewExecutor(robotID)
		exec.SetPacer(s.pacer)
		s.executors[robotID] = exec
	}
	return exec, nil
}

func (s *missionService) LoadCommand(robotID string, document []byte) (*model.MissionCommand, error) {
	exec, err := s.executorFor(robotID)
	if err != nil {
		return nil, err
	}

	cmd, err := command.Decode(document)
	if err != nil {
		return nil, err
	}
	if err := exec.LoadCommand(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (s *missionService) Execute(ctx context.Context, robotID string) (*model.MissionReport, error) {
	exec, err := s.executorFor(robotID)
	if err != nil {
		return nil, err
	}

	report, err := exec.ExecuteMission(ctx)
	if err != nil {
		return nil, err
	}

	// Hand the run's records to the persistence collaborators. Storage
	// failures do not undo the executed mission; they are logged and the
	// report still goes back to the caller.
	for _, record := range exec.Telemetry() {
		rec := record
		if err := s.telemetry.Record(ctx, &rec); err != nil {
			utils.Logger.Errorf("telemetry persist failed for %s: %v", robotID, err)
			break
		}
	}
	summary := report.Summary
	if err := s.telemetry.SaveSummary(ctx, &summary); err != nil {
		utils.Logger.Errorf("summary persist failed for %s: %v", robotID, err)
	}

	if err := s.robotService.UpdateStatus(robotID, report.Status); err != nil {
		utils.Logger.Warnf("registry status update failed for %s: %v", robotID, err)
	}

	return report, nil
}

func (s *missionService) Status(robotID string) (*model.RobotState, error) {
	exec, err := s.executorFor(robotID)
	if err != nil {
		return nil, err
	}
	state := exec.State()
	return &state, nil
}

func (s *missionService) Telemetry(robotID string) ([]model.TelemetryRecord, error) {
	exec, err := s.executorFor(robotID)
	if err != nil {
		return nil, err
	}
	return exec.Telemetry(), nil
}

func (s *missionService) ApplySensorReading(robotID string, pos *model.GeoPosition, fuelPercent, batteryVoltage float64) error {
	exec, err := s.executorFor(robotID)
	if err != nil {
		return err
	}
	if pos != nil {
		if err := pos.Validate(); err != nil {
			return err
		}
	}
	return exec.SetSensorReadings(pos, fuelPercent, batteryVoltage)
}
