package model

// SafetyLimits are the mission-supplied thresholds checked before navigation starts.
type SafetyLimits struct {
	MinFuelPercent    float64 `json:"min_fuel_percent" bson:"min_fuel_percent"`
	MinBatteryVoltage float64 `json:"min_battery_voltage_v" bson:"min_battery_voltage_v"`
}

type HarvestParameters struct {
	CuttingHeightCm  float64 `json:"cutting_height_cm" bson:"cutting_height_cm"`
	BladeSpeedRPM    float64 `json:"blade_speed_rpm" bson:"blade_speed_rpm"`
	ConveyorSpeedMS  float64 `json:"conveyor_speed_m_s" bson:"conveyor_speed_m_s"`
	HopperCapacityKg float64 `json:"hopper_capacity_kg" bson:"hopper_capacity_kg"`
}

type ZoneAssignment struct {
	ZoneID   string  `json:"zone_id" bson:"zone_id"`
	ZoneName string  `json:"zone_name" bson:"zone_name"`
	AreaHa   float64 `json:"area_ha" bson:"area_ha"`
}

type ExpectedResults struct {
	AreaToHarvestHa        float64 `json:"area_to_harvest_ha" bson:"area_to_harvest_ha"`
	EstimatedYieldTons     float64 `json:"estimated_yield_tons" bson:"estimated_yield_tons"`
	EstimatedDurationHours float64 `json:"estimated_duration_hours" bson:"estimated_duration_hours"`
}

// MissionCommand is the planning document a robot executes. It is owned by exactly
// one robot, identified by RobotID.
type MissionCommand struct {
	RobotID           string            `json:"robot_id" bson:"robot_id"`
	MissionID         string            `json:"mission_id" bson:"mission_id"`
	CommandID         string            `json:"command_id" bson:"command_id"`
	Zone              ZoneAssignment    `json:"zone_assignment" bson:"zone_assignment"`
	Plan              NavigationPlan    `json:"navigation_plan" bson:"navigation_plan"`
	HarvestParameters HarvestParameters `json:"harvest_parameters" bson:"harvest_parameters"`
	SafetyLimits      SafetyLimits      `json:"safety_limits" bson:"safety_limits"`
	ExpectedResults   ExpectedResults   `json:"expected_results" bson:"expected_results"`
}
