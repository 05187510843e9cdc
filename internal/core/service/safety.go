package service

import (
	"fmt"

	"microbot/internal/core/model"
)

// Safety issue codes.
const (
	IssueLowFuel    = "low_fuel"
	IssueLowBattery = "low_battery"
	IssueNoGPSFix   = "no_gps_fix"
)

// CheckPreconditions validates robot state against the mission's safety limits.
// It returns every violated check, in a fixed order, so the caller can report
// all problems at once. It never mutates state.
func CheckPreconditions(state *model.RobotState, limits model.SafetyLimits) []model.SafetyIssue {
	var issues []model.SafetyIssue

	if state.FuelLevelPercent < limits.MinFuelPercent {
		issues = append(issues, model.SafetyIssue{
			Code:    IssueLowFuel,
			Message: fmt.Sprintf("fuel at %.1f%%, minimum %.1f%%", state.FuelLevelPercent, limits.MinFuelPercent),
		})
	}
	if state.BatteryVoltage < limits.MinBatteryVoltage {
		issues = append(issues, model.SafetyIssue{
			Code:    IssueLowBattery,
			Message: fmt.Sprintf("battery at %.1fV, minimum %.1fV", state.BatteryVoltage, limits.MinBatteryVoltage),
		})
	}
	if state.CurrentPosition == nil {
		issues = append(issues, model.SafetyIssue{
			Code:    IssueNoGPSFix,
			Message: "no GPS fix available",
		})
	}

	return issues
}
