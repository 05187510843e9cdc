package service

import (
	"context"
	"errors"

	"microbot/internal/cache"
	"microbot/internal/core/model"
	"microbot/internal/core/repository"
	"microbot/internal/messaging"
	"microbot/internal/utils"
)

type TelemetryService interface {
	Record(ctx context.Context, record *model.TelemetryRecord) error
	SaveSummary(ctx context.Context, summary *model.TelemetrySummary) error
	GetRobotTelemetry(robotID string) ([]*model.TelemetryRecord, error)
	GetMissionTelemetry(missionID string) ([]*model.TelemetryRecord, error)
	GetLatest(ctx context.Context, robotID string) (*model.TelemetryRecord, error)
	GetSummary(missionID string) (*model.TelemetrySummary, error)
}

type telemetryService struct {
	telemetryRepo repository.TelemetryRepository
	publisher     messaging.Publisher
}

func NewTelemetryService(telemetryRepo repository.TelemetryRepository, publisher messaging.Publisher) TelemetryService {
	return &telemetryService{
		telemetryRepo: telemetryRepo,
		publisher:     publisher,
	}
}

// Record persists one telemetry record, refreshes the latest-reading cache and
// hands the record to the reporting collaborator.
func (s *telemetryService) Record(ctx context.Context, record *model.TelemetryRecord) error {
	if err := s.telemetryRepo.Create(record); err != nil {
		return err
	}

	if err := cache.SetLatestTelemetry(ctx, record.RobotID, record); err != nil {
		utils.Logger.Warnf("telemetry cache update failed for %s: %v", record.RobotID, err)
	}
	if err := s.publisher.PublishRecord(record); err != nil {
		utils.Logger.Warnf("telemetry publish failed for %s: %v", record.RobotID, err)
	}
	return nil
}

func (s *telemetryService) SaveSummary(ctx context.Context, summary *model.TelemetrySummary) error {
	if err := s.telemetryRepo.SaveSummary(summary); err != nil {
		return err
	}
	if err := s.publisher.PublishSummary(summary); err != nil {
		utils.Logger.Warnf("summary publish failed for %s: %v", summary.RobotID, err)
	}
	return nil
}

func (s *telemetryService) GetRobotTelemetry(robotID string) ([]*model.TelemetryRecord, error) {
	if robotID == "" {
		return nil, errors.New("invalid robot ID")
	}
	return s.telemetryRepo.FindByRobotID(robotID)
}

func (s *telemetryService) GetMissionTelemetry(missionID string) ([]*model.TelemetryRecord, error) {
	if missionID == "" {
		return nil, errors.New("invalid mission ID")
	}
	return s.telemetryRepo.FindByMissionID(missionID)
}

func (s *telemetryService) GetLatest(ctx context.Context, robotID string) (*model.TelemetryRecord, error) {
	if robotID == "" {
		return nil, errors.New("invalid robot ID")
	}

	var cached model.TelemetryRecord
	if err := cache.GetLatestTelemetry(ctx, robotID, &cached); err == nil {
		return &cached, nil
	}
	return s.telemetryRepo.FindLatestByRobotID(robotID)
}

func (s *telemetryService) GetSummary(missionID string) (*model.TelemetrySummary, error) {
	if missionID == "" {
		return nil, errors.New("invalid mission ID")
	}
	return s.telemetryRepo.FindSummaryByMissionID(missionID)
}
