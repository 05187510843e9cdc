package repository

import (
	"sync"

	"microbot/internal/core/model"
)

type inMemoryTelemetryRepository struct {
	records   []*model.TelemetryRecord
	summaries []*model.TelemetrySummary
	mutex     sync.RWMutex
}

func NewInMemoryTelemetryRepository() TelemetryRepository {
	return &inMemoryTelemetryRepository{}
}

func (r *inMemoryTelemetryRepository) Create(record *model.TelemetryRecord) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *inMemoryTelemetryRepository) FindByRobotID(robotID string) ([]*model.TelemetryRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.TelemetryRecord
	for _, record := range r.records {
		if record.RobotID == robotID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *inMemoryTelemetryRepository) FindByMissionID(missionID string) ([]*model.TelemetryRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.TelemetryRecord
	for _, record := range r.records {
		if record.MissionID == missionID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *inMemoryTelemetryRepository) FindLatestByRobotID(robotID string) (*model.TelemetryRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	// Records arrive in append order; the latest for a robot is the last match.
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].RobotID == robotID {
			return r.records[i], nil
		}
	}
	return nil, nil
}

func (r *inMemoryTelemetryRepository) SaveSummary(summary *model.TelemetrySummary) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.summaries = append(r.summaries, summary)
	return nil
}

func (r *inMemoryTelemetryRepository) FindSummaryByMissionID(missionID string) (*model.TelemetrySummary, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for i := len(r.summaries) - 1; i >= 0; i-- {
		if r.summaries[i].MissionID == missionID {
			return r.summaries[i], nil
		}
	}
	return nil, nil
}
