package repository

import (
	"testing"

	"microbot/internal/core/model"
)

func TestInMemoryTelemetryRepository(t *testing.T) {
	repo := NewInMemoryTelemetryRepository()

	state := model.NewRobotState("MICROBOT-001")
	for seq := 0; seq < 3; seq++ {
		rec := model.NewTelemetryRecord(state, "MISSION-1", seq, 1.5)
		if err := repo.Create(&rec); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	other := model.NewTelemetryRecord(model.NewRobotState("MICROBOT-002"), "MISSION-2", 0, 1.0)
	if err := repo.Create(&other); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	records, err := repo.FindByRobotID("MICROBOT-001")
	if err != nil {
		t.Fatalf("FindByRobotID() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	for i, record := range records {
		if record.Seq != i {
			t.Errorf("record %d has seq %d, want append order preserved", i, record.Seq)
		}
	}

	latest, err := repo.FindLatestByRobotID("MICROBOT-001")
	if err != nil {
		t.Fatalf("FindLatestByRobotID() error = %v", err)
	}
	if latest == nil || latest.Seq != 2 {
		t.Errorf("latest = %+v, want seq 2", latest)
	}

	missing, err := repo.FindLatestByRobotID("MICROBOT-999")
	if err != nil {
		t.Fatalf("FindLatestByRobotID() error = %v", err)
	}
	if missing != nil {
		t.Errorf("latest for unknown robot = %+v, want nil", missing)
	}
}

func TestInMemoryTelemetrySummaries(t *testing.T) {
	repo := NewInMemoryTelemetryRepository()

	summary := &model.TelemetrySummary{
		RobotID:     "MICROBOT-001",
		MissionID:   "MISSION-1",
		FinalStatus: model.StatusMissionCompleted,
		RecordCount: 3,
	}
	if err := repo.SaveSummary(summary); err != nil {
		t.Fatalf("SaveSummary() error = %v", err)
	}

	got, err := repo.FindSummaryByMissionID("MISSION-1")
	if err != nil {
		t.Fatalf("FindSummaryByMissionID() error = %v", err)
	}
	if got == nil || got.RecordCount != 3 {
		t.Errorf("summary = %+v, want record count 3", got)
	}

	none, err := repo.FindSummaryByMissionID("MISSION-404")
	if err != nil {
		t.Fatalf("FindSummaryByMissionID() error = %v", err)
	}
	if none != nil {
		t.Errorf("summary for unknown mission = %+v, want nil", none)
	}
}
