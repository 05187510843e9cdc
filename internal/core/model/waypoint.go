package model

// WaypointAction tags what the robot does on arrival at a waypoint.
type WaypointAction string

const (
	ActionNavigate        WaypointAction = "navigate"
	ActionTurn            WaypointAction = "turn"
	ActionHarvestStart    WaypointAction = "harvest_start"
	ActionHarvestContinue WaypointAction = "harvest_continue"
	ActionHarvestEnd      WaypointAction = "harvest_end"
)

func (a WaypointAction) IsValid() bool {
	switch a {
	case ActionNavigate, ActionTurn, ActionHarvestStart, ActionHarvestContinue, ActionHarvestEnd:
		return true
	}
	return false
}

// IsHarvesting reports whether the action fills the hopper.
func (a WaypointAction) IsHarvesting() bool {
	return a == ActionHarvestStart || a == ActionHarvestContinue
}

// Waypoint is a single target of a navigation plan. Immutable once part of a plan.
type Waypoint struct {
	ID         string         `json:"waypoint_id" bson:"waypoint_id"`
	Latitude   float64        `json:"lat" bson:"lat"`
	Longitude  float64        `json:"lon" bson:"lon"`
	VelocityMS float64        `json:"velocity_m_s" bson:"velocity_m_s"`
	Action     WaypointAction `json:"action" bson:"action"`
}

func (w Waypoint) Position() GeoPosition {
	return GeoPosition{Latitude: w.Latitude, Longitude: w.Longitude}
}

// NavigationPlan is an ordered waypoint sequence. Waypoints execute strictly in order.
type NavigationPlan struct {
	StartPosition    GeoPosition `json:"start_position" bson:"start_position"`
	Waypoints        []Waypoint  `json:"waypoints" bson:"waypoints"`
	PathLengthMeters float64     `json:"path_length_meters" bson:"path_length_meters"`
}
