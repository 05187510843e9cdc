package service

import (
	"testing"

	"microbot/internal/core/model"
)

func TestCheckPreconditionsAllClear(t *testing.T) {
	state := model.NewRobotState("MICROBOT-001")
	state.CurrentPosition = &model.GeoPosition{Latitude: -22.7145, Longitude: -47.6489}

	limits := model.SafetyLimits{MinFuelPercent: 20, MinBatteryVoltage: 22}
	if issues := CheckPreconditions(state, limits); len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
}

func TestCheckPreconditionsReportsAllViolations(t *testing.T) {
	state := model.NewRobotState("MICROBOT-001")
	state.FuelLevelPercent = 5
	state.BatteryVoltage = 18
	state.CurrentPosition = nil

	limits := model.SafetyLimits{MinFuelPercent: 20, MinBatteryVoltage: 22}
	issues := CheckPreconditions(state, limits)
	if len(issues) != 3 {
		t.Fatalf("issues = %d, want 3", len(issues))
	}

	// Fixed reporting order: fuel, battery, GPS.
	wantCodes := []string{IssueLowFuel, IssueLowBattery, IssueNoGPSFix}
	for i, want := range wantCodes {
		if issues[i].Code != want {
			t.Errorf("issue[%d].Code = %q, want %q", i, issues[i].Code, want)
		}
	}
}

func TestCheckPreconditionsSingleViolation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*model.RobotState)
		wantCode string
	}{
		{"low fuel", func(s *model.RobotState) { s.FuelLevelPercent = 10 }, IssueLowFuel},
		{"low battery", func(s *model.RobotState) { s.BatteryVoltage = 20 }, IssueLowBattery},
		{"no gps fix", func(s *model.RobotState) { s.CurrentPosition = nil }, IssueNoGPSFix},
	}

	limits := model.SafetyLimits{MinFuelPercent: 20, MinBatteryVoltage: 22}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := model.NewRobotState("MICROBOT-001")
			state.CurrentPosition = &model.GeoPosition{Latitude: 0, Longitude: 0}
			tt.mutate(state)

			issues := CheckPreconditions(state, limits)
			if len(issues) != 1 || issues[0].Code != tt.wantCode {
				t.Errorf("issues = %v, want single %q", issues, tt.wantCode)
			}
		})
	}
}

func TestCheckPreconditionsDoesNotMutateState(t *testing.T) {
	state := model.NewRobotState("MICROBOT-001")
	state.FuelLevelPercent = 5
	before := *state

	CheckPreconditions(state, model.SafetyLimits{MinFuelPercent: 20, MinBatteryVoltage: 22})
	if *state != before {
		t.Errorf("state mutated by CheckPreconditions: %+v != %+v", *state, before)
	}
}
