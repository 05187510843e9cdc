// Package resource holds the per-waypoint consumption rules for fuel, battery
// and the harvest hopper. All transformations are pure: they take a state
// snapshot and return a new one.
package resource

import "microbot/internal/core/model"

const (
	// FuelPerWaypointPercent is burned on every executed waypoint.
	FuelPerWaypointPercent = 0.5
	// HopperFillPerHarvestPercent is added while a harvest action is active.
	HopperFillPerHarvestPercent = 15.0
	// ActiveHarvestRateKgMin is the nominal cutter throughput while harvesting.
	ActiveHarvestRateKgMin = 180.0
)

// ApplyWaypointEffect returns the state after executing one waypoint. Fuel is
// clamped at 0 and hopper fill at 100; battery voltage is read-only here, it
// only changes through sensor readings.
func ApplyWaypointEffect(state model.RobotState, wp model.Waypoint) model.RobotState {
	state.FuelLevelPercent = clamp(state.FuelLevelPercent-FuelPerWaypointPercent, 0, 100)

	switch {
	case wp.Action.IsHarvesting():
		state.HopperFillPercent = clamp(state.HopperFillPercent+HopperFillPerHarvestPercent, 0, 100)
		state.HarvestRateKgMin = ActiveHarvestRateKgMin
	case wp.Action == model.ActionHarvestEnd:
		state.HarvestRateKgMin = 0
	}

	return state
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
