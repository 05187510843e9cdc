package command

import (
	"errors"
	"testing"
)

const validDocument = `{
	"robot_id": "MICROBOT-001",
	"mission_id": "MISSION-2024-001",
	"command_id": "CMD-0001",
	"zone_assignment": {"zone_id": "Z-12", "zone_name": "North Field", "area_ha": 4.2},
	"navigation_plan": {
		"start_position": {"lat": -22.7145, "lon": -47.6489, "heading_deg": 90},
		"waypoints": [
			{"waypoint_id": "WP-001", "lat": -22.7146, "lon": -47.6488, "velocity_m_s": 1.5, "action": "navigate"},
			{"waypoint_id": "WP-002", "lat": -22.7147, "lon": -47.6487, "velocity_m_s": 0.8, "action": "harvest_start"},
			{"waypoint_id": "WP-003", "lat": -22.7148, "lon": -47.6486, "velocity_m_s": 0.8, "action": "harvest_end"}
		],
		"path_length_meters": 45.0
	},
	"harvest_parameters": {"cutting_height_cm": 15, "blade_speed_rpm": 1200, "conveyor_speed_m_s": 1.5, "hopper_capacity_kg": 500},
	"safety_limits": {"min_fuel_percent": 20, "min_battery_voltage_v": 22.0},
	"expected_results": {"area_to_harvest_ha": 4.2, "estimated_yield_tons": 340, "estimated_duration_hours": 6.5}
}`

func TestDecodeValidDocument(t *testing.T) {
	cmd, err := Decode([]byte(validDocument))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if cmd.RobotID != "MICROBOT-001" {
		t.Errorf("RobotID = %q", cmd.RobotID)
	}
	if cmd.MissionID != "MISSION-2024-001" {
		t.Errorf("MissionID = %q", cmd.MissionID)
	}
	if len(cmd.Plan.Waypoints) != 3 {
		t.Fatalf("waypoints = %d, want 3", len(cmd.Plan.Waypoints))
	}
	if cmd.Plan.StartPosition.Latitude != -22.7145 {
		t.Errorf("start latitude = %f", cmd.Plan.StartPosition.Latitude)
	}
	if cmd.SafetyLimits.MinFuelPercent != 20 {
		t.Errorf("min fuel = %f", cmd.SafetyLimits.MinFuelPercent)
	}
	if got := cmd.Plan.Waypoints[1].Action; got != "harvest_start" {
		t.Errorf("waypoint 2 action = %q", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"not json", `{robot`, ErrInvalidDocument},
		{
			"missing robot id",
			`{"mission_id": "M", "command_id": "C", "navigation_plan": {"waypoints": [{"waypoint_id": "W", "action": "navigate"}]}}`,
			ErrMissingRobotID,
		},
		{
			"missing mission id",
			`{"robot_id": "R", "command_id": "C", "navigation_plan": {"waypoints": [{"waypoint_id": "W", "action": "navigate"}]}}`,
			ErrMissingMissionID,
		},
		{
			"missing command id",
			`{"robot_id": "R", "mission_id": "M", "navigation_plan": {"waypoints": [{"waypoint_id": "W", "action": "navigate"}]}}`,
			ErrMissingCommandID,
		},
		{
			"no waypoints",
			`{"robot_id": "R", "mission_id": "M", "command_id": "C", "navigation_plan": {"waypoints": []}}`,
			ErrEmptyPlan,
		},
		{
			"latitude out of range",
			`{"robot_id": "R", "mission_id": "M", "command_id": "C", "navigation_plan": {"waypoints": [{"waypoint_id": "W", "lat": 95, "lon": 0, "action": "navigate"}]}}`,
			ErrInvalidCoordinate,
		},
		{
			"longitude out of range",
			`{"robot_id": "R", "mission_id": "M", "command_id": "C", "navigation_plan": {"start_position": {"lat": 0, "lon": 190}, "waypoints": [{"waypoint_id": "W", "action": "navigate"}]}}`,
			ErrInvalidCoordinate,
		},
		{
			"negative velocity",
			`{"robot_id": "R", "mission_id": "M", "command_id": "C", "navigation_plan": {"waypoints": [{"waypoint_id": "W", "velocity_m_s": -1, "action": "navigate"}]}}`,
			ErrInvalidVelocity,
		},
		{
			"unknown action",
			`{"robot_id": "R", "mission_id": "M", "command_id": "C", "navigation_plan": {"waypoints": [{"waypoint_id": "W", "action": "plow"}]}}`,
			ErrInvalidAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVelocityZeroIsValid(t *testing.T) {
	// A hold-position waypoint has zero velocity; that is not an error.
	doc := `{"robot_id": "R", "mission_id": "M", "command_id": "C", "navigation_plan": {"waypoints": [{"waypoint_id": "W", "velocity_m_s": 0, "action": "turn"}]}}`
	if _, err := Decode([]byte(doc)); err != nil {
		t.Errorf("Decode() error = %v, want nil", err)
	}
}
