package resource

import (
	"testing"

	"microbot/internal/core/model"
)

func baseState() model.RobotState {
	return model.RobotState{
		RobotID:          "MICROBOT-001",
		Status:           model.StatusNavigating,
		FuelLevelPercent: 100,
		BatteryVoltage:   24.5,
	}
}

func TestApplyWaypointEffect(t *testing.T) {
	tests := []struct {
		name       string
		state      model.RobotState
		action     model.WaypointAction
		wantFuel   float64
		wantHopper float64
		wantRate   float64
	}{
		{"navigate burns fuel only", baseState(), model.ActionNavigate, 99.5, 0, 0},
		{"turn burns fuel only", baseState(), model.ActionTurn, 99.5, 0, 0},
		{"harvest start fills hopper", baseState(), model.ActionHarvestStart, 99.5, 15, 180},
		{"harvest continue fills hopper", baseState(), model.ActionHarvestContinue, 99.5, 15, 180},
		{
			"harvest end stops rate, keeps hopper",
			model.RobotState{FuelLevelPercent: 50, HopperFillPercent: 45, HarvestRateKgMin: 180},
			model.ActionHarvestEnd, 49.5, 45, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyWaypointEffect(tt.state, model.Waypoint{ID: "WP-1", Action: tt.action})
			if got.FuelLevelPercent != tt.wantFuel {
				t.Errorf("fuel = %f, want %f", got.FuelLevelPercent, tt.wantFuel)
			}
			if got.HopperFillPercent != tt.wantHopper {
				t.Errorf("hopper = %f, want %f", got.HopperFillPercent, tt.wantHopper)
			}
			if got.HarvestRateKgMin != tt.wantRate {
				t.Errorf("harvest rate = %f, want %f", got.HarvestRateKgMin, tt.wantRate)
			}
		})
	}
}

func TestFuelClampedAtZero(t *testing.T) {
	state := baseState()
	state.FuelLevelPercent = 0.3

	wp := model.Waypoint{ID: "WP-1", Action: model.ActionNavigate}
	state = ApplyWaypointEffect(state, wp)
	if state.FuelLevelPercent != 0 {
		t.Errorf("fuel = %f, want clamp to 0", state.FuelLevelPercent)
	}

	// Stays at zero no matter how long the plan runs.
	for i := 0; i < 50; i++ {
		state = ApplyWaypointEffect(state, wp)
	}
	if state.FuelLevelPercent != 0 {
		t.Errorf("fuel = %f after long plan, want 0", state.FuelLevelPercent)
	}
}

func TestHopperClampedAtHundred(t *testing.T) {
	state := baseState()
	wp := model.Waypoint{ID: "WP-1", Action: model.ActionHarvestContinue}

	for i := 0; i < 20; i++ {
		state = ApplyWaypointEffect(state, wp)
		if state.HopperFillPercent > 100 {
			t.Fatalf("hopper = %f after %d harvest waypoints, want <= 100", state.HopperFillPercent, i+1)
		}
	}
	if state.HopperFillPercent != 100 {
		t.Errorf("hopper = %f, want saturation at 100", state.HopperFillPercent)
	}
}

func TestBatteryVoltageUntouched(t *testing.T) {
	state := baseState()
	for _, action := range []model.WaypointAction{
		model.ActionNavigate, model.ActionTurn, model.ActionHarvestStart,
		model.ActionHarvestContinue, model.ActionHarvestEnd,
	} {
		got := ApplyWaypointEffect(state, model.Waypoint{Action: action})
		if got.BatteryVoltage != state.BatteryVoltage {
			t.Errorf("action %s changed battery voltage: %f", action, got.BatteryVoltage)
		}
	}
}
